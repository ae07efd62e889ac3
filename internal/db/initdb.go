// internal/db/initdb.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// CreateDatabaseIfNotExists creates the target database when it is missing.
// It connects to the "postgres" maintenance database to do so.
func CreateDatabaseIfNotExists(ctx context.Context, connString string, logger logrus.FieldLogger) error {
	dbName, err := extractDBName(connString)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	rootConnStr, err := replaceDBName(connString, "postgres")
	if err != nil {
		return fmt.Errorf("failed to create root connection string: %w", err)
	}

	db, err := sql.Open("postgres", rootConnStr)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	return ensureDatabase(ctx, db, dbName, logger)
}

func ensureDatabase(ctx context.Context, db *sql.DB, dbName string, logger logrus.FieldLogger) error {
	var exists bool
	err := db.QueryRowContext(ctx, "SELECT true FROM pg_database WHERE datname = $1", dbName).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	logger.WithField("database", dbName).Info("creating database")
	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(dbName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

// extractDBName reads the database name from a URL or key=value connection string
func extractDBName(connString string) (string, error) {
	if strings.HasPrefix(connString, "postgres://") || strings.HasPrefix(connString, "postgresql://") {
		u, err := url.Parse(connString)
		if err != nil {
			return "", fmt.Errorf("failed to parse connection URL: %w", err)
		}
		return strings.TrimPrefix(u.Path, "/"), nil
	}

	pairs := strings.Fields(connString)
	for _, pair := range pairs {
		if strings.HasPrefix(pair, "dbname=") {
			return strings.TrimPrefix(pair, "dbname="), nil
		}
	}

	return "", fmt.Errorf("could not find database name in connection string")
}

// replaceDBName replaces the database name in a connection string
func replaceDBName(connString, newName string) (string, error) {
	if strings.HasPrefix(connString, "postgres://") || strings.HasPrefix(connString, "postgresql://") {
		u, err := url.Parse(connString)
		if err != nil {
			return "", err
		}
		u.Path = "/" + newName
		return u.String(), nil
	}

	var result []string
	pairs := strings.Fields(connString)
	for _, pair := range pairs {
		if strings.HasPrefix(pair, "dbname=") {
			result = append(result, "dbname="+newName)
		} else {
			result = append(result, pair)
		}
	}
	return strings.Join(result, " "), nil
}
