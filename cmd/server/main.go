package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/starleaf/koperasi/internal/adapter/http"
	"github.com/starleaf/koperasi/internal/adapter/http/handler"
	"github.com/starleaf/koperasi/internal/adapter/http/middleware"
	"github.com/starleaf/koperasi/internal/adapter/repository/memory"
	"github.com/starleaf/koperasi/internal/infrastructure/auth"
	"github.com/starleaf/koperasi/internal/infrastructure/config"
	"github.com/starleaf/koperasi/internal/infrastructure/logger"
	"github.com/starleaf/koperasi/internal/infrastructure/metrics"
	"github.com/starleaf/koperasi/internal/infrastructure/seed"
	"github.com/starleaf/koperasi/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx := context.Background()

	// Initialize in-memory stores. All state is ephemeral and resets on
	// restart; there is deliberately no persistence layer.
	txRepo := memory.NewTransactionRepository()
	userRepo := memory.NewUserRepository()
	auditRepo := memory.NewAuditRepository()
	idempotencyStore := memory.NewIdempotencyStore()
	idGen := memory.NewULIDGenerator()

	if cfg.SeedDemoData {
		if err := seed.Apply(ctx, txRepo, userRepo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("seeded demo transactions and users")
	}

	// Initialize metrics
	m := metrics.New()

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(txRepo, auditRepo, idGen, m, appLogger)
	userUC := usecase.NewUserUseCase(userRepo, auditRepo, idGen, m, appLogger)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// Initialize auth
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize handlers
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	userHandler := handler.NewUserHandler(userUC)
	authHandler := handler.NewAuthHandler(userUC, jwtManager, cfg.DemoPassword)
	auditHandler := handler.NewAuditHandler(auditUC)
	healthHandler := handler.NewHealthHandler(txRepo)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:    ledgerHandler,
		UserHandler:      userHandler,
		AuthHandler:      authHandler,
		AuditHandler:     auditHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
