package usecase

import "time"

const (
	// DefaultPageSize is the page size applied when a caller does not ask for one
	DefaultPageSize = 20

	// MaxPageSize caps list requests
	MaxPageSize = 100

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// clampPage normalizes pagination parameters.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
