package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starleaf/koperasi/internal/adapter/http/dto"
	"github.com/starleaf/koperasi/internal/domain"
)

type auditServiceStub struct {
	listFn func(ctx context.Context, actorRole domain.Role, filter domain.AuditFilter) ([]*domain.AuditRecord, error)
}

func (s *auditServiceStub) ListRecords(ctx context.Context, actorRole domain.Role, filter domain.AuditFilter) ([]*domain.AuditRecord, error) {
	return s.listFn(ctx, actorRole, filter)
}

func TestAuditHandler_List(t *testing.T) {
	handler := NewAuditHandler(&auditServiceStub{
		listFn: func(ctx context.Context, actorRole domain.Role, filter domain.AuditFilter) ([]*domain.AuditRecord, error) {
			if filter.ActorID != "U-0002" {
				t.Errorf("actor filter = %s, want U-0002", filter.ActorID)
			}
			if filter.Action != domain.AuditActionTransactionRecord {
				t.Errorf("action filter = %s, want transaction.record", filter.Action)
			}
			return []*domain.AuditRecord{
				{ID: "a1", ActorID: "U-0002", Action: domain.AuditActionTransactionRecord, Status: domain.AuditStatusSuccess},
			}, nil
		},
	})

	req := withActor(httptest.NewRequest(http.MethodGet, "/audit?actor_id=U-0002&action=transaction.record", nil), domain.RoleSuperAdmin)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.AuditRecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Status != "success" {
		t.Fatalf("unexpected records: %+v", resp)
	}
}

func TestAuditHandler_List_Forbidden(t *testing.T) {
	handler := NewAuditHandler(&auditServiceStub{
		listFn: func(ctx context.Context, actorRole domain.Role, filter domain.AuditFilter) ([]*domain.AuditRecord, error) {
			return nil, domain.ErrForbidden
		},
	})

	req := withActor(httptest.NewRequest(http.MethodGet, "/audit", nil), domain.RoleAdmin)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
