package domain

import (
	"fmt"
	"time"
)

// TransactionKind distinguishes stock receipts from stock disbursements.
type TransactionKind string

const (
	// KindInbound is a stock receipt ("barang masuk").
	KindInbound TransactionKind = "inbound"

	// KindOutbound is a stock disbursement ("barang keluar").
	KindOutbound TransactionKind = "outbound"
)

// IsValid checks if the kind is a known transaction kind.
func (k TransactionKind) IsValid() bool {
	return k == KindInbound || k == KindOutbound
}

// Transaction represents a single immutable goods transaction.
// Transactions are only ever appended; there is no edit or delete.
type Transaction struct {
	ID              string
	Date            string // calendar date, YYYY-MM-DD
	Kind            TransactionKind
	ItemName        string
	Quantity        int64
	UnitPrice       int64
	DiscountPercent int // effective (role-clamped) value, 0-100
	Note            string
	CreatedAt       time.Time
}

// Total returns the post-discount total for this transaction.
func (t *Transaction) Total() int64 {
	return CalcTotal(t.Quantity, t.UnitPrice, t.DiscountPercent)
}

// LedgerSummary holds the derived aggregates over all transactions.
// Balance is outbound minus inbound.
type LedgerSummary struct {
	TotalInbound  int64
	TotalOutbound int64
	Balance       int64
}

// TransactionID renders a ledger sequence number as a display ID.
// Sequence numbers start at 1 and are never reused.
func TransactionID(seq int) string {
	return fmt.Sprintf("TX-%04d", seq)
}
