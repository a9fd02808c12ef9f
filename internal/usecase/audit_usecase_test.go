package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/usecase"
	"github.com/starleaf/koperasi/internal/usecase/mocks"
)

func TestAuditUseCase_ListRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditRepo := mocks.NewMockAuditRepository(ctrl)
	auditRepo.EXPECT().List(gomock.Any(), domain.AuditFilter{
		Action: domain.AuditActionTransactionRecord,
		Limit:  usecase.DefaultPageSize,
	}).Return([]*domain.AuditRecord{
		{ID: "a1", Action: domain.AuditActionTransactionRecord},
	}, nil)

	uc := usecase.NewAuditUseCase(auditRepo)

	records, err := uc.ListRecords(context.Background(), domain.RoleSuperAdmin, domain.AuditFilter{
		Action: domain.AuditActionTransactionRecord,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestAuditUseCase_ListRecords_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewAuditUseCase(mocks.NewMockAuditRepository(ctrl))

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleOperator} {
		if _, err := uc.ListRecords(context.Background(), role, domain.AuditFilter{}); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}
