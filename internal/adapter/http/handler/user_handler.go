package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starleaf/koperasi/internal/adapter/http/dto"
	"github.com/starleaf/koperasi/internal/adapter/http/middleware"
	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/usecase"
)

// UserService defines the behavior needed by UserHandler.
type UserService interface {
	CreateUser(ctx context.Context, input usecase.CreateUserInput) (*domain.UserAccount, error)
	ListUsers(ctx context.Context, input usecase.ListUsersInput) ([]*domain.UserAccount, error)
	SetRole(ctx context.Context, actorID string, actorRole domain.Role, id string, role domain.Role) (*domain.UserAccount, error)
	ToggleActive(ctx context.Context, actorID string, actorRole domain.Role, id string) (*domain.UserAccount, error)
}

// UserHandler handles user management HTTP requests.
type UserHandler struct {
	userUC UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUC UserService) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Create creates a new user account.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.CreateUser(r.Context(), req.ToUseCaseInput(actor.ID, actor.Role))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create user", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// List lists user accounts.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	users, err := h.userUC.ListUsers(r.Context(), usecase.ListUsersInput{
		ActorRole: actor.Role,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list users", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListUsersResponse{
		Users: dto.UsersFromDomain(users),
		Total: int64(len(users)),
	})
}

// SetRole changes a user's role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	var req dto.SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.SetRole(r.Context(), actor.ID, actor.Role, id, domain.Role(req.Role))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to change role", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// ToggleActive flips a user's active flag.
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	user, err := h.userUC.ToggleActive(r.Context(), actor.ID, actor.Role, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to toggle user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
