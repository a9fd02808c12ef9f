package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/infrastructure/auth"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// UserContextKey is the context key for the authenticated user
	UserContextKey ContextKey = "user"
)

// AuthMiddleware creates an authentication middleware
func AuthMiddleware(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			user := &domain.UserAccount{
				ID:       claims.UserID,
				Username: claims.Username,
				Role:     claims.Role,
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRecorder only lets through roles that may record transactions.
func RequireRecorder(next http.Handler) http.Handler {
	return requireCapability(next, func(c domain.Capability) bool { return c.CanRecordTransactions })
}

// RequireUserManager only lets through roles that may manage users.
func RequireUserManager(next http.Handler) http.Handler {
	return requireCapability(next, func(c domain.Capability) bool { return c.CanManageUsers })
}

func requireCapability(next http.Handler, allowed func(domain.Capability) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !allowed(domain.CapabilityFor(user.Role)) {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*domain.UserAccount, bool) {
	user, ok := ctx.Value(UserContextKey).(*domain.UserAccount)
	return user, ok
}
