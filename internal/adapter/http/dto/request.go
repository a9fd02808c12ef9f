package dto

import (
	"github.com/starleaf/koperasi/internal/domain"
	"github.com/starleaf/koperasi/internal/usecase"
)

// RecordTransactionRequest represents a request to record a transaction.
type RecordTransactionRequest struct {
	Date            string `json:"date"`
	Kind            string `json:"kind"`
	ItemName        string `json:"item_name"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       int64  `json:"unit_price"`
	DiscountPercent int    `json:"discount_percent"`
	Note            string `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input for the given actor.
func (r *RecordTransactionRequest) ToUseCaseInput(actorID string, actorRole domain.Role) usecase.RecordTransactionInput {
	return usecase.RecordTransactionInput{
		ActorID:         actorID,
		ActorRole:       actorRole,
		Date:            r.Date,
		Kind:            domain.TransactionKind(r.Kind),
		ItemName:        r.ItemName,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.DiscountPercent,
		Note:            r.Note,
	}
}

// CreateUserRequest represents a request to create a user account.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ToUseCaseInput converts to use case input for the given actor.
func (r *CreateUserRequest) ToUseCaseInput(actorID string, actorRole domain.Role) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		ActorID:   actorID,
		ActorRole: actorRole,
		Name:      r.Name,
		Username:  r.Username,
		Role:      domain.Role(r.Role),
	}
}

// SetRoleRequest represents a request to change a user's role.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
