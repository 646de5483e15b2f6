package http

import (
	"log/slog"

	"github.com/gdugdh24/healthlog-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/healthlog-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	healthLogHandler *handler.HealthLogHandler
	dashboardHandler *handler.DashboardHandler
	reportHandler    *handler.ReportHandler
	coachHandler     *handler.CoachHandler
	authMiddleware   *middleware.AuthMiddleware
	logger           *slog.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	healthLogHandler *handler.HealthLogHandler,
	dashboardHandler *handler.DashboardHandler,
	reportHandler *handler.ReportHandler,
	coachHandler *handler.CoachHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) *Router {
	return &Router{
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		healthLogHandler: healthLogHandler,
		dashboardHandler: dashboardHandler,
		reportHandler:    reportHandler,
		coachHandler:     coachHandler,
		authMiddleware:   authMiddleware,
		logger:           logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(r.logger), gin.Recovery())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler)
		v1.HEAD("/health", healthHandler)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.POST("/change-password", r.authMiddleware.RequireAuth(), r.authHandler.ChangePassword)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.DELETE("/account", r.authHandler.DeleteAccount)

			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
			}

			logs := protected.Group("/logs")
			{
				logs.POST("", r.healthLogHandler.CreateLog)
				logs.GET("", r.healthLogHandler.ListLogs)
				logs.GET("/:id", r.healthLogHandler.GetLog)
				logs.PUT("/:id", r.healthLogHandler.UpdateLog)
				logs.DELETE("/:id", r.healthLogHandler.DeleteLog)
			}

			protected.GET("/dashboard", r.dashboardHandler.GetDashboard)
			protected.GET("/tips", r.dashboardHandler.GetTips)

			report := protected.Group("/report")
			{
				report.GET("/pdf", r.reportHandler.DownloadPDF)
				report.GET("/csv", r.reportHandler.DownloadCSV)
			}

			protected.GET("/coach", r.coachHandler.GetAnalysis)
		}
	}

	return router
}
