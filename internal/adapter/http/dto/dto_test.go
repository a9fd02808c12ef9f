package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starleaf/koperasi/internal/domain"
)

func TestRecordTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := RecordTransactionRequest{
		Date:            "2024-03-01",
		Kind:            "outbound",
		ItemName:        "Minyak Goreng 1L",
		Quantity:        24,
		UnitPrice:       3500,
		DiscountPercent: 10,
		Note:            "penjualan anggota",
	}

	in := req.ToUseCaseInput("U-0002", domain.RoleAdmin)

	assert.Equal(t, "U-0002", in.ActorID)
	assert.Equal(t, domain.RoleAdmin, in.ActorRole)
	assert.Equal(t, domain.KindOutbound, in.Kind)
	assert.Equal(t, "Minyak Goreng 1L", in.ItemName)
	assert.Equal(t, int64(24), in.Quantity)
	assert.Equal(t, int64(3500), in.UnitPrice)
	assert.Equal(t, 10, in.DiscountPercent)
	assert.Equal(t, "penjualan anggota", in.Note)
}

func TestCreateUserRequest_ToUseCaseInput(t *testing.T) {
	req := CreateUserRequest{Name: "Budi Santoso", Username: "budi", Role: "operator"}

	in := req.ToUseCaseInput("U-0001", domain.RoleSuperAdmin)

	assert.Equal(t, "U-0001", in.ActorID)
	assert.Equal(t, domain.RoleSuperAdmin, in.ActorRole)
	assert.Equal(t, "budi", in.Username)
	assert.Equal(t, domain.RoleOperator, in.Role)
}

func TestTransactionFromDomain(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	tx := &domain.Transaction{
		ID:              "TX-0001",
		Date:            "2024-03-01",
		Kind:            domain.KindOutbound,
		ItemName:        "Minyak Goreng 1L",
		Quantity:        24,
		UnitPrice:       3500,
		DiscountPercent: 10,
		CreatedAt:       created,
	}

	resp := TransactionFromDomain(tx)

	require.NotNil(t, resp)
	assert.Equal(t, "TX-0001", resp.ID)
	assert.Equal(t, "outbound", resp.Kind)
	assert.Equal(t, int64(75600), resp.Total)
	assert.Equal(t, created, resp.CreatedAt)
}

func TestTransactionsFromDomain_Empty(t *testing.T) {
	resp := TransactionsFromDomain(nil)

	require.NotNil(t, resp)
	assert.Len(t, resp, 0)
}

func TestSummaryFromDomain(t *testing.T) {
	resp := SummaryFromDomain(&domain.LedgerSummary{
		TotalInbound:  680000,
		TotalOutbound: 155600,
		Balance:       -524400,
	})

	assert.Equal(t, int64(680000), resp.TotalInbound)
	assert.Equal(t, int64(155600), resp.TotalOutbound)
	assert.Equal(t, int64(-524400), resp.Balance)
}

func TestUserFromDomain(t *testing.T) {
	now := time.Now()
	resp := UserFromDomain(&domain.UserAccount{
		ID:        "U-0003",
		Name:      "Operator Satu",
		Username:  "operator1",
		Role:      domain.RoleOperator,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})

	assert.Equal(t, "U-0003", resp.ID)
	assert.Equal(t, "operator", resp.Role)
	assert.True(t, resp.Active)
}

func TestAuditRecordsFromDomain(t *testing.T) {
	records := AuditRecordsFromDomain([]*domain.AuditRecord{
		{
			ID:           "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			ActorID:      "U-0002",
			ActorRole:    domain.RoleAdmin,
			Action:       domain.AuditActionTransactionRecord,
			ResourceType: "transaction",
			ResourceID:   "TX-0004",
			Status:       domain.AuditStatusSuccess,
		},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "U-0002", records[0].ActorID)
	assert.Equal(t, "admin", records[0].ActorRole)
	assert.Equal(t, "TX-0004", records[0].ResourceID)
	assert.Equal(t, "success", records[0].Status)
}
