package domain

import "testing"

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		role     Role
		expected bool
	}{
		{RoleOperator, true},
		{RoleAdmin, true},
		{RoleSuperAdmin, true},
		{Role(""), false},
		{Role("superadmin"), false},
		{Role("Admin"), false},
	}

	for _, tt := range tests {
		if got := tt.role.IsValid(); got != tt.expected {
			t.Errorf("IsValid(%q) = %v, want %v", tt.role, got, tt.expected)
		}
	}
}

func TestUserID(t *testing.T) {
	tests := []struct {
		seq      int
		expected string
	}{
		{1, "U-0001"},
		{3, "U-0003"},
		{4, "U-0004"},
		{123, "U-0123"},
	}

	for _, tt := range tests {
		if got := UserID(tt.seq); got != tt.expected {
			t.Errorf("UserID(%d) = %q, want %q", tt.seq, got, tt.expected)
		}
	}
}
