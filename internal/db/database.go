package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"simsea/internal/db/migrations"
)

type Database struct {
	*sql.DB
}

// New opens the Postgres pool and pings it once.
func New(ctx context.Context, connectionString string, logger logrus.FieldLogger) (*Database, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to database")
	return &Database{db}, nil
}

func (db *Database) Close() error {
	return db.DB.Close()
}

// Open creates the database when missing, connects, and applies pending migrations.
func Open(ctx context.Context, connectionString string, logger logrus.FieldLogger) (*Database, error) {
	if err := CreateDatabaseIfNotExists(ctx, connectionString, logger); err != nil {
		return nil, fmt.Errorf("ensure database exists: %w", err)
	}

	database, err := New(ctx, connectionString, logger)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(ctx, database.DB, logger); err != nil {
		database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return database, nil
}
