package seed

import (
	"context"
	"time"

	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/usecase"
)

// Demo rows matching the cooperative's sample books: one restock receipt and
// two discounted/plain sales, plus one account per role.

// Transactions returns the demo ledger rows, oldest first so the repository
// assigns TX-0001..TX-0003 in order.
func Transactions() []*domain.Transaction {
	now := time.Now().UTC()
	return []*domain.Transaction{
		{
			Date:            "2026-01-22",
			Kind:            domain.KindInbound,
			ItemName:        "Beras 5kg",
			Quantity:        10,
			UnitPrice:       68000,
			DiscountPercent: 0,
			Note:            "Restock",
			CreatedAt:       now,
		},
		{
			Date:            "2026-01-22",
			Kind:            domain.KindOutbound,
			ItemName:        "Mie Instan",
			Quantity:        24,
			UnitPrice:       3500,
			DiscountPercent: 10,
			Note:            "Promo",
			CreatedAt:       now,
		},
		{
			Date:            "2026-01-21",
			Kind:            domain.KindOutbound,
			ItemName:        "Gula 1kg",
			Quantity:        5,
			UnitPrice:       16000,
			DiscountPercent: 0,
			Note:            "Penjualan",
			CreatedAt:       now,
		},
	}
}

// Users returns the demo accounts, one per role. The repository assigns
// U-0001..U-0003 in order.
func Users() []*domain.UserAccount {
	now := time.Now().UTC()
	return []*domain.UserAccount{
		{Name: "Super Admin", Username: "superadmin", Role: domain.RoleSuperAdmin, Active: true, CreatedAt: now, UpdatedAt: now},
		{Name: "Admin 1", Username: "admin1", Role: domain.RoleAdmin, Active: true, CreatedAt: now, UpdatedAt: now},
		{Name: "Operator 1", Username: "operator1", Role: domain.RoleOperator, Active: true, CreatedAt: now, UpdatedAt: now},
	}
}

// Apply inserts the demo rows into the given stores.
func Apply(ctx context.Context, txRepo usecase.TransactionRepository, userRepo usecase.UserRepository) error {
	for _, t := range Transactions() {
		if err := txRepo.Create(ctx, t); err != nil {
			return err
		}
	}
	for _, u := range Users() {
		if err := userRepo.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
