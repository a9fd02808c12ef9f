package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/starleaf/koperasi/internal/adapter/http/dto"
	"github.com/starleaf/koperasi/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var rangeErr *domain.OutOfRangeError
	if errors.As(err, &rangeErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyItemName),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrSuperAdminProtected):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrInactiveUser):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseInt64Query parses an int64 query parameter with a default value.
func parseInt64Query(r *http.Request, key string, defaultValue int64) int64 {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultValue
	}
	return i
}
