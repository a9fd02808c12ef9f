package usecase

import (
	"context"
	"time"

	"github.com/starleaf/koperasi/internal/domain"
)

// TransactionRepository defines data access for the transaction ledger.
// Create assigns the next sequential ID (TX-000N) to the transaction.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	Count(ctx context.Context) (int, error)
	Summary(ctx context.Context) (*domain.LedgerSummary, error)
}

// UserRepository defines data access for user accounts.
// Create assigns the next sequential ID (U-000N) to the account.
type UserRepository interface {
	Create(ctx context.Context, user *domain.UserAccount) error
	GetByID(ctx context.Context, id string) (*domain.UserAccount, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error)
	Update(ctx context.Context, user *domain.UserAccount) error
	List(ctx context.Context, limit, offset int) ([]*domain.UserAccount, error)
}

// AuditRepository defines data access for the audit trail.
type AuditRepository interface {
	Create(ctx context.Context, record *domain.AuditRecord) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditRecord, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
