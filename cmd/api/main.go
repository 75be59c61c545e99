package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cobramax/backend/internal/auth"
	"github.com/cobramax/backend/internal/config"
	"github.com/cobramax/backend/internal/db"
	closingdomain "github.com/cobramax/backend/internal/domain/closing"
	loandomain "github.com/cobramax/backend/internal/domain/loan"
	reportdomain "github.com/cobramax/backend/internal/domain/report"
	"github.com/cobramax/backend/internal/http/handlers"
	"github.com/cobramax/backend/internal/observability"
	postgresrepo "github.com/cobramax/backend/internal/repository/postgres"
	"github.com/cobramax/backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect postgres", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	authRepo := db.NewAuthRepository(pool)
	jwtManager := auth.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSigningKey)
	authService := auth.NewService(authRepo, jwtManager, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	authHandler := handlers.NewAuthHandler(authService, auth.CookieConfig{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure}, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	clientRepo := postgresrepo.NewClientRepository(pool)
	loanRepo := postgresrepo.NewLoanRepository(pool)
	paymentRepo := postgresrepo.NewPaymentRepository(pool)
	expenseRepo := postgresrepo.NewExpenseRepository(pool)
	closingRepo := postgresrepo.NewClosingRepository(pool)

	loanService := loandomain.NewService(clientRepo, loanRepo)
	closingService := closingdomain.NewService(closingRepo, loanRepo, paymentRepo, expenseRepo)
	reportService := reportdomain.NewService(authRepo, clientRepo, loanRepo, paymentRepo, expenseRepo, closingRepo)

	loanHandler := handlers.NewLoanHandler(loanService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)
	closingHandler := handlers.NewClosingHandler(closingService, logger)

	r := server.NewRouter(cfg, logger, server.Dependencies{
		Pinger:         pool,
		AuthHandler:    authHandler,
		LoanHandler:    loanHandler,
		ReportHandler:  reportHandler,
		ClosingHandler: closingHandler,
		JWTManager:     jwtManager,
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("api server starting", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	logger.Info("api server stopped")
}
