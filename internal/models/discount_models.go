package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount types. A fixed discount subtracts Value directly; a percentage
// discount subtracts subtotal * Value / 100.
const (
	DiscountTypeFixed      = "fixed"
	DiscountTypePercentage = "percentage"
)

// Discount is a redeemable code. Codes are stored upper-case and matched
// exactly; validation additionally requires IsActive and an expiry strictly
// in the future.
type Discount struct {
	ID        int64           `json:"id"`
	Code      string          `json:"code" db:"code"`
	Type      string          `json:"type" db:"type"`
	Value     decimal.Decimal `json:"value" db:"value"`
	ExpiresAt time.Time       `json:"expires_at" db:"expires_at"`
	IsActive  bool            `json:"is_active" db:"is_active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// IsValidDiscountType reports whether t is a known discount type.
func IsValidDiscountType(t string) bool {
	return t == DiscountTypeFixed || t == DiscountTypePercentage
}

// Usable reports whether the discount can be redeemed at the given moment:
// the active flag is set and the expiry is strictly in the future.
func (d *Discount) Usable(now time.Time) bool {
	return d.IsActive && d.ExpiresAt.After(now)
}

// AmountFor computes the monetary effect of the discount on a subtotal.
// Fixed discounts subtract the stored value; percentage discounts subtract
// subtotal * value / 100. The result is never negative and never exceeds
// the subtotal.
func (d *Discount) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch d.Type {
	case DiscountTypePercentage:
		amount = subtotal.Mul(d.Value).Div(decimal.NewFromInt(100))
	default:
		amount = d.Value
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}
