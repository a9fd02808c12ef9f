package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/starleaf/koperasi/internal/adapter/http/handler"
	"github.com/starleaf/koperasi/internal/adapter/http/middleware"
	"github.com/starleaf/koperasi/internal/infrastructure/auth"
	"github.com/starleaf/koperasi/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler    *handler.LedgerHandler
	UserHandler      *handler.UserHandler
	AuthHandler      *handler.AuthHandler
	AuditHandler     *handler.AuditHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
				r.Use(idempotencyMiddleware.Wrap)
			}

			r.Get("/auth/me", cfg.AuthHandler.Me)

			// Transactions
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", cfg.LedgerHandler.List)
				r.Get("/summary", cfg.LedgerHandler.Summary)
				r.With(middleware.RequireRecorder).Get("/preview", cfg.LedgerHandler.Preview)
				r.With(middleware.RequireRecorder).Post("/", cfg.LedgerHandler.Create)
				r.Get("/{id}", cfg.LedgerHandler.Get)
			})

			// Users (super admin only)
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireUserManager)
				r.Post("/", cfg.UserHandler.Create)
				r.Get("/", cfg.UserHandler.List)
				r.Patch("/{id}", cfg.UserHandler.SetRole)
				r.Post("/{id}/toggle", cfg.UserHandler.ToggleActive)
			})

			// Audit trail (super admin only)
			r.With(middleware.RequireUserManager).Get("/audit", cfg.AuditHandler.List)
		})
	})

	return r
}
