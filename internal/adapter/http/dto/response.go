package dto

import (
	"time"

	"github.com/starleaf/koperasi/internal/domain"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Kind            string    `json:"kind"`
	ItemName        string    `json:"item_name"`
	Quantity        int64     `json:"quantity"`
	UnitPrice       int64     `json:"unit_price"`
	DiscountPercent int       `json:"discount_percent"`
	Note            string    `json:"note,omitempty"`
	Total           int64     `json:"total"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		Date:            t.Date,
		Kind:            string(t.Kind),
		ItemName:        t.ItemName,
		Quantity:        t.Quantity,
		UnitPrice:       t.UnitPrice,
		DiscountPercent: t.DiscountPercent,
		Note:            t.Note,
		Total:           t.Total(),
		CreatedAt:       t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// RecordTransactionResponse is returned after a transaction is recorded.
// DiscountCapped mirrors the dashboard's inline warning: informational, the
// clamped discount was applied regardless.
type RecordTransactionResponse struct {
	Transaction       *TransactionResponse `json:"transaction"`
	RequestedDiscount int                  `json:"requested_discount"`
	EffectiveDiscount int                  `json:"effective_discount"`
	DiscountCapped    bool                 `json:"discount_capped"`
}

// ListTransactionsResponse is the paginated transaction list.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// SummaryResponse represents the ledger aggregates.
type SummaryResponse struct {
	TotalInbound  int64 `json:"total_inbound"`
	TotalOutbound int64 `json:"total_outbound"`
	Balance       int64 `json:"balance"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s *domain.LedgerSummary) *SummaryResponse {
	return &SummaryResponse{
		TotalInbound:  s.TotalInbound,
		TotalOutbound: s.TotalOutbound,
		Balance:       s.Balance,
	}
}

// PreviewResponse represents a pre-submit total preview.
type PreviewResponse struct {
	Quantity          int64 `json:"quantity"`
	UnitPrice         int64 `json:"unit_price"`
	Subtotal          int64 `json:"subtotal"`
	RequestedDiscount int   `json:"requested_discount"`
	EffectiveDiscount int   `json:"effective_discount"`
	DiscountCapped    bool  `json:"discount_capped"`
	MaxDiscount       int   `json:"max_discount"`
	Total             int64 `json:"total"`
}

// PreviewFromDomain converts a domain preview to a response.
func PreviewFromDomain(p domain.TotalPreview) *PreviewResponse {
	return &PreviewResponse{
		Quantity:          p.Quantity,
		UnitPrice:         p.UnitPrice,
		Subtotal:          p.Subtotal,
		RequestedDiscount: p.RequestedDiscount,
		EffectiveDiscount: p.EffectiveDiscount,
		DiscountCapped:    p.DiscountCapped,
		MaxDiscount:       p.MaxDiscount,
		Total:             p.Total,
	}
}

// UserResponse represents a user account in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.UserAccount) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.UserAccount) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// ListUsersResponse is the paginated user list.
type ListUsersResponse struct {
	Users []*UserResponse `json:"users"`
	Total int64           `json:"total"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// AuditRecordResponse represents an audit record in API responses.
type AuditRecordResponse struct {
	ID           string    `json:"id"`
	ActorID      string    `json:"actor_id"`
	ActorRole    string    `json:"actor_role"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Status       string    `json:"status"`
	Detail       string    `json:"detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditRecordsFromDomain converts domain audit records to responses.
func AuditRecordsFromDomain(records []*domain.AuditRecord) []*AuditRecordResponse {
	result := make([]*AuditRecordResponse, len(records))
	for i, r := range records {
		result[i] = &AuditRecordResponse{
			ID:           r.ID,
			ActorID:      r.ActorID,
			ActorRole:    string(r.ActorRole),
			Action:       string(r.Action),
			ResourceType: r.ResourceType,
			ResourceID:   r.ResourceID,
			Status:       string(r.Status),
			Detail:       r.Detail,
			CreatedAt:    r.CreatedAt,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
