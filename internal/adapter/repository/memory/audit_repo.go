package memory

import (
	"context"
	"sync"

	"github.com/starleaf/koperasi/internal/domain"
)

// maxAuditRecords bounds the in-memory audit trail so a long-lived process
// does not grow without limit. Oldest records are dropped first.
const maxAuditRecords = 10_000

// AuditRepository is the in-memory audit trail, newest-first.
type AuditRepository struct {
	mu      sync.RWMutex
	records []*domain.AuditRecord
}

// NewAuditRepository creates an empty audit trail.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Create prepends a record to the trail.
func (r *AuditRepository) Create(ctx context.Context, record *domain.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]*domain.AuditRecord{record}, r.records...)
	if len(r.records) > maxAuditRecords {
		r.records = r.records[:maxAuditRecords]
	}
	return nil
}

// List returns records newest-first, filtered and paginated.
func (r *AuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.AuditRecord, 0, len(r.records))
	for _, rec := range r.records {
		if filter.ActorID != "" && rec.ActorID != filter.ActorID {
			continue
		}
		if filter.Action != "" && rec.Action != filter.Action {
			continue
		}
		matched = append(matched, rec)
	}

	if filter.Offset >= len(matched) {
		return []*domain.AuditRecord{}, nil
	}

	end := len(matched)
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}

	return matched[filter.Offset:end], nil
}
