package domain

import "time"

// AuditRecord is one entry in the in-memory audit trail. Records are kept
// for the lifetime of the process only, like every other piece of state.
type AuditRecord struct {
	ID           string
	ActorID      string
	ActorRole    Role
	Action       AuditAction
	ResourceType string
	ResourceID   string
	Status       AuditStatus
	Detail       string
	CreatedAt    time.Time
}

// AuditAction represents different types of auditable actions.
type AuditAction string

const (
	AuditActionTransactionRecord AuditAction = "transaction.record"
	AuditActionUserCreate        AuditAction = "user.create"
	AuditActionUserSetRole       AuditAction = "user.set_role"
	AuditActionUserToggleActive  AuditAction = "user.toggle_active"
	AuditActionUserLogin         AuditAction = "user.login"
)

// AuditStatus represents the outcome of an audited action.
type AuditStatus string

const (
	AuditStatusSuccess  AuditStatus = "success"
	AuditStatusRejected AuditStatus = "rejected"
)

// AuditFilter defines filters for querying audit records.
type AuditFilter struct {
	ActorID string
	Action  AuditAction
	Limit   int
	Offset  int
}
