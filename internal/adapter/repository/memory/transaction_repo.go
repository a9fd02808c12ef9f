package memory

import (
	"context"
	"sync"

	"github.com/starleaf/koperasi/internal/domain"
)

// TransactionRepository is the in-memory transaction ledger. Nothing is
// persisted; state resets when the process restarts. A mutex serializes
// writers so the single-mutator invariant holds under concurrent HTTP
// handlers.
type TransactionRepository struct {
	mu sync.RWMutex

	// newest first
	transactions []*domain.Transaction

	// running post-discount sums, updated on Create so Summary is O(1)
	totalInbound  int64
	totalOutbound int64
}

// NewTransactionRepository creates an empty ledger.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Create assigns the next sequential ID and inserts the transaction at the
// head of the ledger.
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Sequence = collection size + 1. Deletion does not exist, so sequence
	// numbers are never reused within a process lifetime.
	transaction.ID = domain.TransactionID(len(r.transactions) + 1)

	r.transactions = append([]*domain.Transaction{transaction}, r.transactions...)

	switch transaction.Kind {
	case domain.KindInbound:
		r.totalInbound += transaction.Total()
	case domain.KindOutbound:
		r.totalOutbound += transaction.Total()
	}

	return nil
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.transactions {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// List returns transactions newest-first with pagination.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.transactions) {
		return []*domain.Transaction{}, nil
	}

	end := offset + limit
	if end > len(r.transactions) {
		end = len(r.transactions)
	}

	result := make([]*domain.Transaction, 0, end-offset)
	for _, t := range r.transactions[offset:end] {
		clone := *t
		result = append(result, &clone)
	}
	return result, nil
}

// Count returns the number of transactions in the ledger.
func (r *TransactionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.transactions), nil
}

// Summary returns the ledger aggregates from the running sums.
func (r *TransactionRepository) Summary(ctx context.Context) (*domain.LedgerSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &domain.LedgerSummary{
		TotalInbound:  r.totalInbound,
		TotalOutbound: r.totalOutbound,
		Balance:       r.totalOutbound - r.totalInbound,
	}, nil
}
