package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/healthlog-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client and verifies the connection.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	logger.Info("connected to redis", "addr", cfg.GetAddr())

	return client, nil
}
