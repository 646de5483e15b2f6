package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/healthlog-backend/internal/config"
	"github.com/gdugdh24/healthlog-backend/internal/delivery/http"
	"github.com/gdugdh24/healthlog-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/healthlog-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/healthlog-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/healthlog-backend/internal/infrastructure/database"
	"github.com/gdugdh24/healthlog-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/healthlog-backend/internal/infrastructure/report"
	"github.com/gdugdh24/healthlog-backend/internal/infrastructure/server"
	"github.com/gdugdh24/healthlog-backend/internal/repository/postgres"
	"github.com/gdugdh24/healthlog-backend/internal/usecase/auth"
	"github.com/gdugdh24/healthlog-backend/internal/usecase/coach"
	"github.com/gdugdh24/healthlog-backend/internal/usecase/dashboard"
	"github.com/gdugdh24/healthlog-backend/internal/usecase/healthlog"
	"github.com/gdugdh24/healthlog-backend/internal/usecase/profile"
	reportuc "github.com/gdugdh24/healthlog-backend/internal/usecase/report"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// narrativeStore is the cache contract shared by the coach and the writers
// that invalidate it.
type narrativeStore interface {
	coach.NarrativeCache
	Invalidate(ctx context.Context, userID int) error
}

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container. Redis and
// Gemini are optional; the app runs without them.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
	}

	var narratives narrativeStore = cache.NoopNarrativeCache{}
	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, coach narratives will not be cached", "error", err)
		} else {
			app.Redis = redisClient
			narratives = cache.NewNarrativeCache(redisClient, cfg.Cache.NarrativeTTL)
		}
	}

	var generator coach.NarrativeGenerator
	geminiClient, err := gemini.NewGeminiClient(ctx, &cfg.Gemini)
	if err != nil {
		logger.Warn("gemini client disabled", "error", err)
	} else {
		app.Gemini = geminiClient
		generator = geminiClient
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	logRepo := postgres.NewHealthLogRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTTL(),
		logger,
	)
	profileUseCase := profile.NewProfileUseCase(profileRepo, userRepo, narratives, logger)
	healthLogUseCase := healthlog.NewHealthLogUseCase(logRepo, profileRepo, narratives, logger)
	dashboardUseCase := dashboard.NewDashboardUseCase(userRepo, logRepo)
	reportUseCase := reportuc.NewReportUseCase(userRepo, profileRepo, logRepo, report.NewPDFRenderer())
	coachUseCase := coach.NewCoachUseCase(userRepo, profileRepo, logRepo, generator, narratives, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	healthLogHandler := handler.NewHealthLogHandler(healthLogUseCase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUseCase)
	reportHandler := handler.NewReportHandler(reportUseCase)
	coachHandler := handler.NewCoachHandler(coachUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := http.NewRouter(
		authHandler,
		profileHandler,
		healthLogHandler,
		dashboardHandler,
		reportHandler,
		coachHandler,
		authMiddleware,
		logger,
	)

	app.Server = server.NewServer(&cfg.Server, router.Setup(), logger)
	return app, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			c.Logger.Error("error closing gemini client", "error", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
