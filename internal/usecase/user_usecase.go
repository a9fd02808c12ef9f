package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/infrastructure/metrics"
)

// UserUseCase handles user account management. Every mutating operation is
// policy-gated: only super admins may manage users, and records whose role is
// super_admin can be neither toggled nor re-roled, regardless of actor.
type UserUseCase struct {
	userRepo  UserRepository
	auditRepo AuditRepository
	idGen     IDGenerator
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	userRepo UserRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		idGen:     idGen,
		metrics:   m,
		logger:    logger,
	}
}

// CreateUserInput represents input for creating a user account.
type CreateUserInput struct {
	ActorID   string
	ActorRole domain.Role
	Name      string
	Username  string
	Role      domain.Role
}

// CreateUser creates a new user account. New accounts default to active.
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.UserAccount, error) {
	if !domain.CapabilityFor(input.ActorRole).CanManageUsers {
		uc.denied(ctx, input.ActorID, input.ActorRole, domain.AuditActionUserCreate, "", "role cannot manage users")
		return nil, domain.ErrForbidden
	}

	if err := domain.ValidateDisplayName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	now := time.Now().UTC()
	user := &domain.UserAccount{
		Name:      input.Name,
		Username:  input.Username,
		Role:      input.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.UsersCreated.Inc()
	}
	uc.audit(ctx, input.ActorID, input.ActorRole, domain.AuditActionUserCreate, user.ID, domain.AuditStatusSuccess, "")

	uc.logger.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("user created")

	return user, nil
}

// ToggleActive flips a user's active flag. Rejected when the target record's
// role is super_admin.
func (uc *UserUseCase) ToggleActive(ctx context.Context, actorID string, actorRole domain.Role, id string) (*domain.UserAccount, error) {
	return uc.mutate(ctx, actorID, actorRole, id, domain.AuditActionUserToggleActive, func(user *domain.UserAccount) error {
		user.Active = !user.Active
		return nil
	})
}

// SetRole changes a user's role. Rejected when the target record's current
// role is super_admin; promoting a non-super-admin TO super_admin is allowed
// (and locks the record from then on).
func (uc *UserUseCase) SetRole(ctx context.Context, actorID string, actorRole domain.Role, id string, role domain.Role) (*domain.UserAccount, error) {
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}
	return uc.mutate(ctx, actorID, actorRole, id, domain.AuditActionUserSetRole, func(user *domain.UserAccount) error {
		user.Role = role
		return nil
	})
}

func (uc *UserUseCase) mutate(
	ctx context.Context,
	actorID string,
	actorRole domain.Role,
	id string,
	action domain.AuditAction,
	apply func(*domain.UserAccount) error,
) (*domain.UserAccount, error) {
	if !domain.CapabilityFor(actorRole).CanManageUsers {
		uc.denied(ctx, actorID, actorRole, action, id, "role cannot manage users")
		return nil, domain.ErrForbidden
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanMutateUser(actorRole, user.Role) {
		if uc.metrics != nil {
			uc.metrics.UserMutationsRejected.WithLabelValues("super_admin_protected").Inc()
		}
		uc.audit(ctx, actorID, actorRole, action, id, domain.AuditStatusRejected, "target is super admin")
		return nil, domain.ErrSuperAdminProtected
	}

	if err := apply(user); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.UserMutations.WithLabelValues(string(action)).Inc()
	}
	uc.audit(ctx, actorID, actorRole, action, id, domain.AuditStatusSuccess, "")

	return user, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.UserAccount, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// ListUsersInput represents input for listing users.
type ListUsersInput struct {
	ActorRole domain.Role
	Limit     int
	Offset    int
}

// ListUsers lists user accounts. Visible to super admins only.
func (uc *UserUseCase) ListUsers(ctx context.Context, input ListUsersInput) ([]*domain.UserAccount, error) {
	if !domain.CapabilityFor(input.ActorRole).CanManageUsers {
		return nil, domain.ErrForbidden
	}
	limit, offset := clampPage(input.Limit, input.Offset)
	return uc.userRepo.List(ctx, limit, offset)
}

// Authenticate verifies a username/password pair against the user store.
// Password verification is delegated to the caller-provided check so the
// demo credential scheme stays out of the core.
func (uc *UserUseCase) Authenticate(ctx context.Context, username string, verify func(*domain.UserAccount) bool) (*domain.UserAccount, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.authAttempt("unknown_user")
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		uc.authAttempt("inactive")
		return nil, domain.ErrInactiveUser
	}

	if verify != nil && !verify(user) {
		uc.authAttempt("bad_credentials")
		return nil, domain.ErrUnauthorized
	}

	uc.authAttempt("success")
	uc.audit(ctx, user.ID, user.Role, domain.AuditActionUserLogin, user.ID, domain.AuditStatusSuccess, "")
	return user, nil
}

func (uc *UserUseCase) authAttempt(status string) {
	if uc.metrics != nil {
		uc.metrics.AuthAttempts.WithLabelValues(status).Inc()
	}
}

func (uc *UserUseCase) denied(ctx context.Context, actorID string, actorRole domain.Role, action domain.AuditAction, resourceID, detail string) {
	if uc.metrics != nil {
		uc.metrics.PolicyDenials.WithLabelValues(string(action)).Inc()
	}
	uc.audit(ctx, actorID, actorRole, action, resourceID, domain.AuditStatusRejected, detail)
}

func (uc *UserUseCase) audit(ctx context.Context, actorID string, actorRole domain.Role, action domain.AuditAction, resourceID string, status domain.AuditStatus, detail string) {
	if uc.auditRepo == nil {
		return
	}

	record := &domain.AuditRecord{
		ID:           uc.idGen.Generate(),
		ActorID:      actorID,
		ActorRole:    actorRole,
		Action:       action,
		ResourceType: "user",
		ResourceID:   resourceID,
		Status:       status,
		Detail:       detail,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.auditRepo.Create(ctx, record); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to write audit record")
	}
}
