package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/starleaf/koperasi/internal/adapter/http/dto"
	"github.com/starleaf/koperasi/internal/adapter/http/middleware"
	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/infrastructure/auth"
)

// Authenticator defines the behavior needed by AuthHandler.
type Authenticator interface {
	Authenticate(ctx context.Context, username string, verify func(*domain.UserAccount) bool) (*domain.UserAccount, error)
	GetUser(ctx context.Context, id string) (*domain.UserAccount, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	userUC     Authenticator
	jwtManager *auth.JWTManager

	// DEMO ONLY: all accounts share one password. There is no credential
	// store; every piece of state is in-memory and reset on restart.
	demoPassword string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userUC Authenticator, jwtManager *auth.JWTManager, demoPassword string) *AuthHandler {
	return &AuthHandler{
		userUC:       userUC,
		jwtManager:   jwtManager,
		demoPassword: demoPassword,
	}
}

// Login handles user login and issues a JWT carrying the user's role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), req.Username, func(*domain.UserAccount) bool {
		return subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.demoPassword)) == 1
	})
	if err != nil {
		writeError(w, mapDomainError(err), "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Me returns the current authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), claims.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
