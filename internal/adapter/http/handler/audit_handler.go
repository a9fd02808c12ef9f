package handler

import (
	"context"
	"net/http"

	"github.com/starleaf/koperasi/internal/adapter/http/dto"
	"github.com/starleaf/koperasi/internal/adapter/http/middleware"
	"github.com/starleaf/koperasi/internal/domain"
)

// AuditService defines the behavior needed by AuditHandler.
type AuditService interface {
	ListRecords(ctx context.Context, actorRole domain.Role, filter domain.AuditFilter) ([]*domain.AuditRecord, error)
}

// AuditHandler exposes the audit trail.
type AuditHandler struct {
	auditUC AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditUC AuditService) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// List lists audit records newest-first.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	records, err := h.auditUC.ListRecords(r.Context(), actor.Role, domain.AuditFilter{
		ActorID: r.URL.Query().Get("actor_id"),
		Action:  domain.AuditAction(r.URL.Query().Get("action")),
		Limit:   parseIntQuery(r, "limit", 50),
		Offset:  parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list audit records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditRecordsFromDomain(records))
}
