package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountType is the closed set of discount kinds.
type DiscountType string

const (
	// DiscountPercentage takes Value percent off the unit price.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed currency amount off the unit price.
	DiscountFixed DiscountType = "fixed"
)

// ParseDiscountType converts user input into a DiscountType.
func ParseDiscountType(s string) (DiscountType, bool) {
	switch DiscountType(strings.ToLower(strings.TrimSpace(s))) {
	case DiscountPercentage:
		return DiscountPercentage, true
	case DiscountFixed:
		return DiscountFixed, true
	default:
		return "", false
	}
}

// Discount is a time-bounded price reduction on one (product, supplier) pair.
type Discount struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	Type       DiscountType    `json:"type"`
	Value      decimal.Decimal `json:"value"`
	ValidFrom  time.Time       `json:"valid_from"`
	ValidUntil time.Time       `json:"valid_until"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsActive reports whether at lies inside [ValidFrom, ValidUntil].
func (d *Discount) IsActive(at time.Time) bool {
	return !at.Before(d.ValidFrom) && !at.After(d.ValidUntil)
}

// Apply returns the exact discounted unit price, never below zero. Rounding is
// left to the stored line total.
func (d *Discount) Apply(base decimal.Decimal) decimal.Decimal {
	var price decimal.Decimal

	switch d.Type {
	case DiscountPercentage:
		price = base.Mul(hundred.Sub(d.Value)).Shift(-2)
	case DiscountFixed:
		price = base.Sub(d.Value)
	default:
		return base
	}

	if price.IsNegative() {
		return decimal.Zero
	}

	return price
}
