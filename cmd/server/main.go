package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdugdh24/healthlog-backend/internal/config"
	"github.com/gdugdh24/healthlog-backend/internal/infrastructure/container"
	"github.com/gdugdh24/healthlog-backend/internal/infrastructure/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(&cfg.Logging)
	slog.SetDefault(log)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	app, err := container.NewContainer(startupCtx, cfg, log)
	cancelStartup()
	if err != nil {
		log.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("error closing application", "error", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Server.Start(); err != nil {
			log.Error("server error", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit

	if err := app.Server.Shutdown(context.Background()); err != nil {
		log.Error("server shutdown error", "error", err)
		return
	}

	log.Info("server exited properly")
}
