package domain

import "testing"

func TestCalcTotal(t *testing.T) {
	tests := []struct {
		name            string
		quantity        int64
		unitPrice       int64
		discountPercent int
		expected        int64
	}{
		{
			name:      "no discount is quantity times price",
			quantity:  10,
			unitPrice: 68000,
			expected:  680000,
		},
		{
			name:            "ten percent discount",
			quantity:        24,
			unitPrice:       3500,
			discountPercent: 10,
			expected:        75600,
		},
		{
			name:            "full discount",
			quantity:        5,
			unitPrice:       16000,
			discountPercent: 100,
			expected:        0,
		},
		{
			name:            "half rounds away from zero",
			quantity:        1,
			unitPrice:       5,
			discountPercent: 50,
			expected:        3,
		},
		{
			name:            "sub-unit half rounds up",
			quantity:        1,
			unitPrice:       1,
			discountPercent: 50,
			expected:        1,
		},
		{
			name:            "fractional result rounds down",
			quantity:        1,
			unitPrice:       3,
			discountPercent: 33,
			expected:        2,
		},
		{
			name:            "discount below range is clamped to zero",
			quantity:        2,
			unitPrice:       100,
			discountPercent: -20,
			expected:        200,
		},
		{
			name:            "discount above range is clamped to hundred",
			quantity:        2,
			unitPrice:       100,
			discountPercent: 150,
			expected:        0,
		},
		{
			name:      "zero price yields zero",
			quantity:  100,
			unitPrice: 0,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcTotal(tt.quantity, tt.unitPrice, tt.discountPercent)
			if got != tt.expected {
				t.Errorf("CalcTotal(%d, %d, %d) = %d, want %d",
					tt.quantity, tt.unitPrice, tt.discountPercent, got, tt.expected)
			}
		})
	}
}

func TestCalcTotal_MonotonicInDiscount(t *testing.T) {
	prev := CalcTotal(7, 1234, 0)
	for d := 1; d <= 100; d++ {
		got := CalcTotal(7, 1234, d)
		if got > prev {
			t.Fatalf("total increased from %d to %d at discount %d", prev, got, d)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("expected total 0 at full discount, got %d", prev)
	}
}

func TestEffectiveDiscount(t *testing.T) {
	tests := []struct {
		name      string
		role      Role
		requested int
		expected  int
	}{
		{name: "admin under cap passes through", role: RoleAdmin, requested: 25, expected: 25},
		{name: "admin at cap passes through", role: RoleAdmin, requested: 30, expected: 30},
		{name: "admin over cap clamps to exactly thirty", role: RoleAdmin, requested: 45, expected: 30},
		{name: "admin at hundred clamps to thirty", role: RoleAdmin, requested: 100, expected: 30},
		{name: "super admin keeps full discount", role: RoleSuperAdmin, requested: 100, expected: 100},
		{name: "super admin passes through", role: RoleSuperAdmin, requested: 45, expected: 45},
		{name: "operator has no discount allowance", role: RoleOperator, requested: 10, expected: 0},
		{name: "unknown role has no discount allowance", role: Role("guest"), requested: 10, expected: 0},
		{name: "negative request clamps to zero", role: RoleAdmin, requested: -5, expected: 0},
		{name: "request above hundred clamps before cap", role: RoleSuperAdmin, requested: 250, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveDiscount(tt.role, tt.requested)
			if got != tt.expected {
				t.Errorf("EffectiveDiscount(%s, %d) = %d, want %d", tt.role, tt.requested, got, tt.expected)
			}
		})
	}
}

func TestCapabilityFor(t *testing.T) {
	super := CapabilityFor(RoleSuperAdmin)
	if !super.CanManageUsers || !super.CanRecordTransactions || super.MaxDiscount != 100 {
		t.Errorf("unexpected super admin capability: %+v", super)
	}

	admin := CapabilityFor(RoleAdmin)
	if admin.CanManageUsers {
		t.Error("admin must not manage users")
	}
	if !admin.CanRecordTransactions {
		t.Error("admin must record transactions")
	}
	if admin.MaxDiscount != AdminMaxDiscount {
		t.Errorf("admin max discount = %d, want %d", admin.MaxDiscount, AdminMaxDiscount)
	}

	operator := CapabilityFor(RoleOperator)
	if operator != (Capability{}) {
		t.Errorf("operator capability should be all-deny, got %+v", operator)
	}

	if CapabilityFor(Role("nonsense")) != (Capability{}) {
		t.Error("unknown role capability should be all-deny")
	}
}

func TestCanMutateUser(t *testing.T) {
	tests := []struct {
		name     string
		actor    Role
		target   Role
		expected bool
	}{
		{name: "super admin mutates operator", actor: RoleSuperAdmin, target: RoleOperator, expected: true},
		{name: "super admin mutates admin", actor: RoleSuperAdmin, target: RoleAdmin, expected: true},
		{name: "super admin cannot mutate super admin", actor: RoleSuperAdmin, target: RoleSuperAdmin, expected: false},
		{name: "admin cannot mutate anyone", actor: RoleAdmin, target: RoleOperator, expected: false},
		{name: "operator cannot mutate anyone", actor: RoleOperator, target: RoleOperator, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutateUser(tt.actor, tt.target); got != tt.expected {
				t.Errorf("CanMutateUser(%s, %s) = %v, want %v", tt.actor, tt.target, got, tt.expected)
			}
		})
	}
}

func TestPreviewTotal(t *testing.T) {
	t.Run("admin over cap is flagged capped", func(t *testing.T) {
		p := PreviewTotal(RoleAdmin, 24, 3500, 45)

		if p.RequestedDiscount != 45 {
			t.Errorf("requested = %d, want 45", p.RequestedDiscount)
		}
		if p.EffectiveDiscount != 30 {
			t.Errorf("effective = %d, want 30", p.EffectiveDiscount)
		}
		if !p.DiscountCapped {
			t.Error("expected DiscountCapped")
		}
		if p.MaxDiscount != AdminMaxDiscount {
			t.Errorf("max discount = %d, want %d", p.MaxDiscount, AdminMaxDiscount)
		}
		if p.Subtotal != 84000 {
			t.Errorf("subtotal = %d, want 84000", p.Subtotal)
		}
		if p.Total != 58800 {
			t.Errorf("total = %d, want 58800", p.Total)
		}
	})

	t.Run("inputs are coerced not rejected", func(t *testing.T) {
		p := PreviewTotal(RoleSuperAdmin, 0, -100, -5)

		if p.Quantity != MinQuantity {
			t.Errorf("quantity = %d, want %d", p.Quantity, MinQuantity)
		}
		if p.UnitPrice != MinUnitPrice {
			t.Errorf("unit price = %d, want %d", p.UnitPrice, MinUnitPrice)
		}
		if p.RequestedDiscount != 0 || p.DiscountCapped {
			t.Errorf("unexpected discount preview: %+v", p)
		}
		if p.Total != 0 {
			t.Errorf("total = %d, want 0", p.Total)
		}
	})

	t.Run("admin within cap carries no warning", func(t *testing.T) {
		p := PreviewTotal(RoleAdmin, 10, 1000, 30)

		if p.DiscountCapped {
			t.Error("discount at the cap must not be flagged")
		}
		if p.Total != 7000 {
			t.Errorf("total = %d, want 7000", p.Total)
		}
	})
}
