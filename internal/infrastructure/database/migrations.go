package database

import (
	"context"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	embeddedmigrations "github.com/gdugdh24/healthlog-backend/migrations"
	"github.com/jmoiron/sqlx"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type migration struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

// Migrate applies embedded SQL migrations that are not yet recorded in
// schema_migrations. Each migration runs in its own transaction.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	migrations, err := loadMigrations(embeddedmigrations.Files)
	if err != nil {
		return err
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}
	appliedSet := make(map[string]struct{}, len(applied))
	for _, version := range applied {
		appliedSet[version] = struct{}{}
	}

	for _, m := range migrations {
		if _, ok := appliedSet[m.Version]; ok {
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return err
		}
	}
	return nil
}

func applyMigration(ctx context.Context, db *sqlx.DB, m migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.Name, err)
	}
	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply migration %s: %w", m.Name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", m.Name, err)
	}
	return tx.Commit()
}

func loadMigrations(files fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]migration, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		version := matches[1]
		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		if existing, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", version, existing, entry.Name())
		}
		seen[version] = entry.Name()

		raw, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, migration{Version: version, Order: order, Name: entry.Name(), SQL: string(raw)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		if migrations[i].Order == migrations[j].Order {
			return migrations[i].Name < migrations[j].Name
		}
		return migrations[i].Order < migrations[j].Order
	})
	return migrations, nil
}
