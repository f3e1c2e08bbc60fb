package budgeting

import (
	"rebobinagem/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	DefaultOperatorDiscountCap = decimal.NewFromInt(7)
	DefaultAdminDiscountCap    = hundred
)

// DiscountPolicy validates and applies percentage discounts under per-role caps.
// Operators may give small courtesy discounts; larger ones need an admin.
type DiscountPolicy struct {
	caps map[entities.Role]decimal.Decimal
}

// NewDiscountPolicy builds a policy with the given caps. Caps are clamped to [0, 100].
func NewDiscountPolicy(operatorCap, adminCap decimal.Decimal) DiscountPolicy {
	return DiscountPolicy{caps: map[entities.Role]decimal.Decimal{
		entities.RoleOperator: clampPercent(operatorCap),
		entities.RoleAdmin:    clampPercent(adminCap),
	}}
}

func DefaultDiscountPolicy() DiscountPolicy {
	return NewDiscountPolicy(DefaultOperatorDiscountCap, DefaultAdminDiscountCap)
}

// Cap returns the maximum percent role may apply.
func (p DiscountPolicy) Cap(role entities.Role) (decimal.Decimal, bool) {
	c, ok := p.caps[role]
	return c, ok
}

// Validate checks percent against the cap of role. A nil or zero percent means
// "no discount" and is always legal.
func (p DiscountPolicy) Validate(role entities.Role, percent *decimal.Decimal) error {
	if NormalizeDiscount(percent) == nil {
		return nil
	}
	if percent.IsNegative() {
		return ErrInvalidDiscount
	}
	limit, ok := p.caps[role]
	if !ok {
		return ErrForbidden
	}
	if percent.GreaterThan(limit) {
		return ErrDiscountExceedsCap
	}
	return nil
}

// Apply computes the discount value and total for subtotal.
func (p DiscountPolicy) Apply(subtotal decimal.Decimal, percent *decimal.Decimal) (discountValue, total decimal.Decimal) {
	return ApplyDiscount(subtotal, percent)
}

// ApplyDiscount returns round2(subtotal * percent / 100) and subtotal minus that value.
// A nil or non-positive percent yields a zero discount.
func ApplyDiscount(subtotal decimal.Decimal, percent *decimal.Decimal) (discountValue, total decimal.Decimal) {
	discountValue = decimal.Zero
	if percent != nil && percent.IsPositive() {
		discountValue = Round2(subtotal.Mul(*percent).Div(hundred))
	}
	return discountValue, subtotal.Sub(discountValue)
}

// Round2 rounds to currency granularity. decimal.Round rounds half away from zero,
// which is half-up for the non-negative amounts handled here.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// NormalizeDiscount maps a zero percent to nil so "0" and "absent" are stored alike.
func NormalizeDiscount(percent *decimal.Decimal) *decimal.Decimal {
	if percent == nil || percent.IsZero() {
		return nil
	}
	cp := *percent
	return &cp
}

// Recalculate refreshes Subtotal, DiscountValue and Total of b from its items and
// discount percent.
func Recalculate(b *entities.Budget) {
	b.Subtotal = SumItems(b.Items)
	b.DiscountValue, b.Total = ApplyDiscount(b.Subtotal, b.DiscountPercent)
}

func clampPercent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}
