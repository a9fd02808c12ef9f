package domain

import (
	"fmt"
	"strings"
	"time"
)

// Field limits
const (
	MinQuantity  int64 = 1
	MaxQuantity  int64 = 1_000_000
	MinUnitPrice int64 = 0
	MaxUnitPrice int64 = 1_000_000_000

	MaxItemNameLength = 255
	MaxNoteLength     = 1024
	MaxNameLength     = 255
	MaxUsernameLength = 64
)

// DateLayout is the calendar date format used on transactions.
const DateLayout = "2006-01-02"

// OutOfRangeError reports a numeric field outside its permitted range.
type OutOfRangeError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// ClampInt coerces a value to the nearest boundary of [min, max].
func ClampInt(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ValidateItemName ensures the item name is non-empty and within limits.
func ValidateItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyItemName
	}
	if len(name) > MaxItemNameLength {
		return fmt.Errorf("item name exceeds %d characters", MaxItemNameLength)
	}
	return nil
}

// ValidateDate ensures the date is a well-formed YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// ValidateQuantity ensures the quantity is within its permitted range.
func ValidateQuantity(quantity int64) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return &OutOfRangeError{Field: "quantity", Value: quantity, Min: MinQuantity, Max: MaxQuantity}
	}
	return nil
}

// ValidateUnitPrice ensures the unit price is within its permitted range.
func ValidateUnitPrice(price int64) error {
	if price < MinUnitPrice || price > MaxUnitPrice {
		return &OutOfRangeError{Field: "unit_price", Value: price, Min: MinUnitPrice, Max: MaxUnitPrice}
	}
	return nil
}

// ValidateDisplayName ensures a user display name is usable.
func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return fmt.Errorf("name must be non-empty and at most %d characters", MaxNameLength)
	}
	return nil
}

// ValidateUsername ensures a username is usable.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > MaxUsernameLength {
		return fmt.Errorf("username must be non-empty and at most %d characters", MaxUsernameLength)
	}
	if strings.ContainsAny(username, " \t\n") {
		return fmt.Errorf("username must not contain whitespace")
	}
	return nil
}
