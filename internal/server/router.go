package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cobramax/backend/internal/auth"
	"github.com/cobramax/backend/internal/config"
	"github.com/cobramax/backend/internal/http/handlers"
	"github.com/cobramax/backend/internal/http/middleware"
	"github.com/cobramax/backend/internal/version"
)

type Dependencies struct {
	Pinger         handlers.Pinger
	AuthHandler    *handlers.AuthHandler
	LoanHandler    *handlers.LoanHandler
	ReportHandler  *handlers.ReportHandler
	ClosingHandler *handlers.ClosingHandler
	JWTManager     *auth.JWTManager
}

func NewRouter(cfg config.Config, logger *slog.Logger, deps Dependencies) *gin.Engine {
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestBodyLimit(cfg.MaxBodyBytes))
	r.Use(func(c *gin.Context) {
		logger.Info("request", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	})

	health := handlers.NewHealthHandler(deps.Pinger)
	meta := handlers.NewMetaHandler(cfg.Env, version.Version)

	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/v1/meta", meta.GetMeta)

	if deps.AuthHandler != nil && deps.JWTManager != nil {
		authGroup := r.Group("/v1/auth")
		authGroup.POST("/login", deps.AuthHandler.Login)
		authGroup.POST("/refresh", deps.AuthHandler.Refresh)
		authGroup.POST("/logout", deps.AuthHandler.Logout)

		authProtected := authGroup.Group("")
		authProtected.Use(middleware.RequireAuth(deps.JWTManager))
		authProtected.GET("/me", deps.AuthHandler.Me)

		protected := r.Group("/v1")
		protected.Use(middleware.RequireAuth(deps.JWTManager))

		if deps.LoanHandler != nil {
			protected.GET("/loans", deps.LoanHandler.ListLoans)
			protected.POST("/loans", deps.LoanHandler.CreateLoan)
		}
		if deps.ReportHandler != nil {
			protected.GET("/reports/daily", deps.ReportHandler.Daily)
			protected.GET("/reports/client-visits", deps.ReportHandler.ClientVisits)
		}
		if deps.ClosingHandler != nil {
			protected.POST("/closings", deps.ClosingHandler.CloseDay)
			protected.GET("/closings/:fecha", deps.ClosingHandler.GetStatement)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return r
}
