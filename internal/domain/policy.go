package domain

import "github.com/shopspring/decimal"

// AdminMaxDiscount is the discount cap applied to the admin role, in percent.
const AdminMaxDiscount = 30

var oneHundred = decimal.NewFromInt(100)

// Capability describes what a role is allowed to do. Role differences are
// modeled as data so callers never branch on the role itself.
type Capability struct {
	MaxDiscount           int
	CanRecordTransactions bool
	CanManageUsers        bool
}

// CapabilityFor returns the capability record for a role. Unknown roles get
// an all-deny capability.
func CapabilityFor(role Role) Capability {
	switch role {
	case RoleSuperAdmin:
		return Capability{MaxDiscount: 100, CanRecordTransactions: true, CanManageUsers: true}
	case RoleAdmin:
		return Capability{MaxDiscount: AdminMaxDiscount, CanRecordTransactions: true}
	case RoleOperator:
		return Capability{}
	default:
		return Capability{}
	}
}

// EffectiveDiscount returns the discount percentage actually applied for a
// role, given the raw requested value. The result is always within
// [0, min(100, role cap)].
func EffectiveDiscount(role Role, requested int) int {
	disc := int(ClampInt(int64(requested), 0, 100))
	if limit := CapabilityFor(role).MaxDiscount; disc > limit {
		return limit
	}
	return disc
}

// CanMutateUser reports whether an actor may change another user record
// (role change or activation toggle). Super admin records are protected
// unconditionally, regardless of actor.
func CanMutateUser(actor, target Role) bool {
	if !CapabilityFor(actor).CanManageUsers {
		return false
	}
	return target != RoleSuperAdmin
}

// CalcTotal computes the post-discount total: round(qty * price * (1 - disc/100)).
// Rounding is half away from zero. The discount is clamped to [0,100] so the
// result is always within [0, qty*price].
func CalcTotal(quantity, unitPrice int64, discountPercent int) int64 {
	disc := ClampInt(int64(discountPercent), 0, 100)

	subtotal := decimal.NewFromInt(quantity).Mul(decimal.NewFromInt(unitPrice))
	factor := decimal.NewFromInt(100 - disc).Div(oneHundred)

	return subtotal.Mul(factor).Round(0).IntPart()
}

// TotalPreview is the pre-submit preview shown before a transaction is
// recorded. Inputs are coerced to their valid ranges, never rejected.
type TotalPreview struct {
	Quantity          int64
	UnitPrice         int64
	Subtotal          int64
	RequestedDiscount int
	EffectiveDiscount int
	DiscountCapped    bool
	MaxDiscount       int
	Total             int64
}

// PreviewTotal computes a preview for raw user input under a role's discount
// cap. DiscountCapped signals the informational warning surfaced when the
// requested discount exceeds the cap; the clamped value is used regardless.
func PreviewTotal(role Role, quantity, unitPrice int64, discountPercent int) TotalPreview {
	qty := ClampInt(quantity, MinQuantity, MaxQuantity)
	price := ClampInt(unitPrice, MinUnitPrice, MaxUnitPrice)
	requested := int(ClampInt(int64(discountPercent), 0, 100))

	limit := CapabilityFor(role).MaxDiscount
	effective := EffectiveDiscount(role, requested)

	return TotalPreview{
		Quantity:          qty,
		UnitPrice:         price,
		Subtotal:          qty * price,
		RequestedDiscount: requested,
		EffectiveDiscount: effective,
		DiscountCapped:    requested > limit,
		MaxDiscount:       limit,
		Total:             CalcTotal(qty, price, effective),
	}
}
