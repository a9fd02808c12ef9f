package memory

import (
	"context"
	"sync"

	"github.com/starleaf/koperasi/internal/domain"
)

// UserRepository is the in-memory user account store. Reads return copies so
// callers can stage changes and commit them through Update.
type UserRepository struct {
	mu sync.RWMutex

	// insertion order
	users      []*domain.UserAccount
	byID       map[string]*domain.UserAccount
	byUsername map[string]*domain.UserAccount
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]*domain.UserAccount),
		byUsername: make(map[string]*domain.UserAccount),
	}
}

// Create assigns the next sequential ID and stores the account.
func (r *UserRepository) Create(ctx context.Context, user *domain.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return domain.ErrUsernameTaken
	}

	user.ID = domain.UserID(len(r.users) + 1)

	stored := *user
	r.users = append(r.users, &stored)
	r.byID[stored.ID] = &stored
	r.byUsername[stored.Username] = &stored

	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// Update replaces a stored account in place. The ID and username are fixed
// at creation and cannot change.
func (r *UserRepository) Update(ctx context.Context, user *domain.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}

	stored.Name = user.Name
	stored.Role = user.Role
	stored.Active = user.Active
	stored.UpdatedAt = user.UpdatedAt

	return nil
}

// List returns users in insertion order with pagination.
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.users) {
		return []*domain.UserAccount{}, nil
	}

	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}

	result := make([]*domain.UserAccount, 0, end-offset)
	for _, u := range r.users[offset:end] {
		clone := *u
		result = append(result, &clone)
	}
	return result, nil
}
