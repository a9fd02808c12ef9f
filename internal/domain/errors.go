package domain

import "errors"

var (
	// Transaction errors
	ErrEmptyItemName       = errors.New("item name cannot be empty")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidKind         = errors.New("invalid transaction kind")
	ErrTransactionNotFound = errors.New("transaction not found")

	// User errors
	ErrInvalidRole         = errors.New("invalid role")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrSuperAdminProtected = errors.New("super admin records cannot be modified")

	// Authorization errors
	ErrForbidden = errors.New("role is not permitted to perform this action")
)
