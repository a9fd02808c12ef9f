package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starleaf/koperasi/internal/adapter/http/dto"
	"github.com/starleaf/koperasi/internal/adapter/http/middleware"
	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	RecordTransaction(ctx context.Context, input usecase.RecordTransactionInput) (*usecase.RecordTransactionOutput, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
	Summary(ctx context.Context) (*domain.LedgerSummary, error)
	PreviewTotal(actorRole domain.Role, quantity, unitPrice int64, discountPercent int) domain.TotalPreview
}

// LedgerHandler handles transaction ledger HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Create records a new transaction.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	out, err := h.ledgerUC.RecordTransaction(r.Context(), req.ToUseCaseInput(actor.ID, actor.Role))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordTransactionResponse{
		Transaction:       dto.TransactionFromDomain(out.Transaction),
		RequestedDiscount: out.RequestedDiscount,
		EffectiveDiscount: out.EffectiveDiscount,
		DiscountCapped:    out.DiscountCapped,
	})
}

// Get retrieves a transaction by ID.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	transaction, err := h.ledgerUC.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(transaction))
}

// List lists transactions newest-first.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	transactions, err := h.ledgerUC.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        int64(len(transactions)),
	})
}

// Summary returns the ledger aggregates.
func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledgerUC.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}

// Preview computes the pre-submit total preview for the caller's role.
// Numeric inputs are coerced to their valid ranges, never rejected.
func (h *LedgerHandler) Preview(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	quantity := parseInt64Query(r, "quantity", 1)
	unitPrice := parseInt64Query(r, "unit_price", 0)
	discount := parseIntQuery(r, "discount_percent", 0)

	preview := h.ledgerUC.PreviewTotal(actor.Role, quantity, unitPrice, discount)

	writeJSON(w, http.StatusOK, dto.PreviewFromDomain(preview))
}
