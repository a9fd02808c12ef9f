package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateItemName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr error
	}{
		{name: "valid name", input: "Beras 5kg"},
		{name: "empty", input: "", expectErr: ErrEmptyItemName},
		{name: "whitespace only", input: "   ", expectErr: ErrEmptyItemName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemName(tt.input)
			if tt.expectErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectErr != nil && !errors.Is(err, tt.expectErr) {
				t.Errorf("expected error %v, got %v", tt.expectErr, err)
			}
		})
	}

	if err := ValidateItemName(strings.Repeat("a", MaxItemNameLength+1)); err == nil {
		t.Error("expected error for over-long item name")
	}
}

func TestValidateDate(t *testing.T) {
	valid := []string{"2024-01-15", "2026-08-31", "2000-02-29"}
	for _, d := range valid {
		if err := ValidateDate(d); err != nil {
			t.Errorf("ValidateDate(%q) unexpected error: %v", d, err)
		}
	}

	invalid := []string{"", "15-01-2024", "2024/01/15", "2024-13-01", "2023-02-29", "yesterday"}
	for _, d := range invalid {
		err := ValidateDate(d)
		if err == nil {
			t.Errorf("ValidateDate(%q) expected error", d)
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ValidateDate(%q) error %v does not wrap ErrInvalidDate", d, err)
		}
	}
}

func TestValidateQuantity(t *testing.T) {
	if err := ValidateQuantity(1); err != nil {
		t.Errorf("unexpected error at lower bound: %v", err)
	}
	if err := ValidateQuantity(MaxQuantity); err != nil {
		t.Errorf("unexpected error at upper bound: %v", err)
	}

	for _, q := range []int64{0, -1, MaxQuantity + 1} {
		err := ValidateQuantity(q)
		if err == nil {
			t.Errorf("ValidateQuantity(%d) expected error", q)
			continue
		}

		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Errorf("ValidateQuantity(%d) error is %T, want *OutOfRangeError", q, err)
			continue
		}
		if oor.Field != "quantity" || oor.Value != q {
			t.Errorf("unexpected range error: %+v", oor)
		}
	}
}

func TestValidateUnitPrice(t *testing.T) {
	if err := ValidateUnitPrice(0); err != nil {
		t.Errorf("unexpected error for free item: %v", err)
	}
	if err := ValidateUnitPrice(MaxUnitPrice); err != nil {
		t.Errorf("unexpected error at upper bound: %v", err)
	}

	for _, p := range []int64{-1, MaxUnitPrice + 1} {
		var oor *OutOfRangeError
		if err := ValidateUnitPrice(p); !errors.As(err, &oor) {
			t.Errorf("ValidateUnitPrice(%d) = %v, want *OutOfRangeError", p, err)
		}
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, min, max, expected int64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := ClampInt(tt.v, tt.min, tt.max); got != tt.expected {
			t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("admin1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	invalid := []string{"", "   ", "has space", strings.Repeat("x", MaxUsernameLength+1)}
	for _, u := range invalid {
		if err := ValidateUsername(u); err == nil {
			t.Errorf("ValidateUsername(%q) expected error", u)
		}
	}
}

func TestValidateDisplayName(t *testing.T) {
	if err := ValidateDisplayName("Budi Santoso"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDisplayName(""); err == nil {
		t.Error("expected error for empty name")
	}
	if err := ValidateDisplayName(strings.Repeat("b", MaxNameLength+1)); err == nil {
		t.Error("expected error for over-long name")
	}
}
