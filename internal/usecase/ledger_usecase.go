package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/infrastructure/metrics"
)

// LedgerUseCase handles the transaction ledger: recording transactions and
// computing derived aggregates.
type LedgerUseCase struct {
	txRepo    TransactionRepository
	auditRepo AuditRepository
	idGen     IDGenerator
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txRepo TransactionRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRepo:    txRepo,
		auditRepo: auditRepo,
		idGen:     idGen,
		metrics:   m,
		logger:    logger,
	}
}

// RecordTransactionInput represents input for recording a transaction.
type RecordTransactionInput struct {
	ActorID         string
	ActorRole       domain.Role
	Date            string
	Kind            domain.TransactionKind
	ItemName        string
	Quantity        int64
	UnitPrice       int64
	DiscountPercent int
	Note            string
}

// RecordTransactionOutput is the result of recording a transaction.
// DiscountCapped is true when the requested discount exceeded the actor's
// cap; the clamped value was applied regardless.
type RecordTransactionOutput struct {
	Transaction       *domain.Transaction
	RequestedDiscount int
	EffectiveDiscount int
	DiscountCapped    bool
}

// RecordTransaction validates a candidate transaction, applies the actor's
// discount cap, and appends the result to the ledger.
func (uc *LedgerUseCase) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	if !domain.CapabilityFor(input.ActorRole).CanRecordTransactions {
		if uc.metrics != nil {
			uc.metrics.PolicyDenials.WithLabelValues(string(domain.AuditActionTransactionRecord)).Inc()
		}
		uc.audit(ctx, input.ActorID, input.ActorRole, "", domain.AuditStatusRejected, "role cannot record transactions")
		return nil, domain.ErrForbidden
	}

	if err := domain.ValidateItemName(input.ItemName); err != nil {
		return nil, err
	}
	if err := domain.ValidateDate(input.Date); err != nil {
		return nil, err
	}
	if !input.Kind.IsValid() {
		return nil, domain.ErrInvalidKind
	}
	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if err := domain.ValidateUnitPrice(input.UnitPrice); err != nil {
		return nil, err
	}

	requested := int(domain.ClampInt(int64(input.DiscountPercent), 0, 100))
	effective := domain.EffectiveDiscount(input.ActorRole, requested)

	transaction := &domain.Transaction{
		Date:            input.Date,
		Kind:            input.Kind,
		ItemName:        input.ItemName,
		Quantity:        input.Quantity,
		UnitPrice:       input.UnitPrice,
		DiscountPercent: effective,
		Note:            input.Note,
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.txRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	capped := requested > effective
	if uc.metrics != nil {
		uc.metrics.TransactionsRecorded.WithLabelValues(string(transaction.Kind)).Inc()
		uc.metrics.TransactionTotal.WithLabelValues(string(transaction.Kind)).Observe(float64(transaction.Total()))
		if capped {
			uc.metrics.DiscountsCapped.Inc()
		}
	}

	uc.audit(ctx, input.ActorID, input.ActorRole, transaction.ID, domain.AuditStatusSuccess, "")

	uc.logger.Info().
		Str("transaction_id", transaction.ID).
		Str("kind", string(transaction.Kind)).
		Str("item", transaction.ItemName).
		Int64("total", transaction.Total()).
		Int("discount", effective).
		Bool("discount_capped", capped).
		Msg("transaction recorded")

	return &RecordTransactionOutput{
		Transaction:       transaction,
		RequestedDiscount: requested,
		EffectiveDiscount: effective,
		DiscountCapped:    capped,
	}, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txRepo.GetByID(ctx, id)
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// ListTransactions lists transactions newest-first with pagination.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	limit, offset := clampPage(input.Limit, input.Offset)
	return uc.txRepo.List(ctx, limit, offset)
}

// Summary returns the ledger aggregates: total inbound, total outbound and
// the balance (outbound minus inbound), all post-discount.
func (uc *LedgerUseCase) Summary(ctx context.Context) (*domain.LedgerSummary, error) {
	summary, err := uc.txRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.LedgerBalance.Set(float64(summary.Balance))
	}
	return summary, nil
}

// PreviewTotal computes the pre-submit total preview for raw input under the
// actor's discount cap. Inputs are coerced, never rejected.
func (uc *LedgerUseCase) PreviewTotal(actorRole domain.Role, quantity, unitPrice int64, discountPercent int) domain.TotalPreview {
	return domain.PreviewTotal(actorRole, quantity, unitPrice, discountPercent)
}

func (uc *LedgerUseCase) audit(ctx context.Context, actorID string, actorRole domain.Role, resourceID string, status domain.AuditStatus, detail string) {
	if uc.auditRepo == nil {
		return
	}

	record := &domain.AuditRecord{
		ID:           uc.idGen.Generate(),
		ActorID:      actorID,
		ActorRole:    actorRole,
		Action:       domain.AuditActionTransactionRecord,
		ResourceType: "transaction",
		ResourceID:   resourceID,
		Status:       status,
		Detail:       detail,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.auditRepo.Create(ctx, record); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to write audit record")
	}
}
