package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/healthlog-backend/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// NewPostgresDB opens the PostgreSQL pool and, when enabled, brings the
// schema up to date.
func NewPostgresDB(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(50)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("connected to postgres", "host", cfg.Host, "db", cfg.DBName)

	if cfg.RunMigrations {
		if err := Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("database migrations applied")
	}

	return db, nil
}
