package handler

import (
	"context"
	"net/http"
)

// LedgerCounter reports the size of the transaction ledger.
type LedgerCounter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler handles health check requests. With no external stores the
// service is ready as soon as it is serving.
type HealthHandler struct {
	ledger LedgerCounter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ledger LedgerCounter) *HealthHandler {
	return &HealthHandler{ledger: ledger}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once the in-memory state is reachable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	count, err := h.ledger.Count(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "ledger unhealthy", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ready",
		"transactions": count,
	})
}
