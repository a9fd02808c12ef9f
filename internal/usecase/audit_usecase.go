package usecase

import (
	"context"

	"github.com/starleaf/koperasi/internal/domain"
)

// AuditUseCase exposes the audit trail to super admins.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListRecords lists audit records, newest-first.
func (uc *AuditUseCase) ListRecords(ctx context.Context, actorRole domain.Role, filter domain.AuditFilter) ([]*domain.AuditRecord, error) {
	if !domain.CapabilityFor(actorRole).CanManageUsers {
		return nil, domain.ErrForbidden
	}

	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)
	return uc.auditRepo.List(ctx, filter)
}
