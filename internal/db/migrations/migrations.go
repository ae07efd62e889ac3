// internal/db/migrations/migrations.go
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var files embed.FS

type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// RunMigrations applies every embedded migration not yet recorded in
// schema_migrations. Migrations only move forward and each runs in its own
// transaction.
func RunMigrations(ctx context.Context, db *sql.DB, logger logrus.FieldLogger) error {
	if err := createMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := getAppliedMigrations(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	migrations, err := Load(files)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.Name, err)
		}
		logger.WithField("version", m.Version).Infof("applied migration %s", m.Name)
	}
	return nil
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func getAppliedMigrations(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// Load reads NNNN_name.up.sql files (and optional .down.sql pairs) from the sql
// directory of fsys, ordered by version.
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "sql/*.up.sql")
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, file := range names {
		version, name, err := parseMigrationFilename(path.Base(file))
		if err != nil {
			return nil, err
		}

		up, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		down, err := fs.ReadFile(fsys, path.Join("sql", fmt.Sprintf("%04d_%s.down.sql", version, name)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			Up:      string(up),
			Down:    string(down),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}
	return migrations, nil
}

func parseMigrationFilename(filename string) (int, string, error) {
	// Expected format: 0001_name.up.sql
	parts := strings.SplitN(filename, "_", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid migration filename format: %s", filename)
	}

	version, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("invalid version in filename %s: %w", filename, err)
	}

	name := strings.TrimSuffix(parts[1], ".up.sql")
	name = strings.TrimSuffix(name, ".down.sql")
	return version, name, nil
}

func applyMigration(ctx context.Context, db *sql.DB, migration Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, migration.Up); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES ($1, $2) ON CONFLICT (version) DO NOTHING",
		migration.Version,
		migration.Name,
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}
