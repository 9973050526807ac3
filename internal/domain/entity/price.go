package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuote is the resolved price of a product at a point in time.
type PriceQuote struct {
	Listing            *SupplierListing `json:"listing"`
	Discount           *Discount        `json:"discount,omitempty"`
	EffectiveUnitPrice decimal.Decimal  `json:"effective_unit_price"`
	At                 time.Time        `json:"at"`
}

// UnitPrice is the undiscounted price of the chosen listing.
func (q *PriceQuote) UnitPrice() decimal.Decimal {
	return q.Listing.UnitPrice
}

// Total is the effective unit price times quantity, rounded to cents for storage.
func (q *PriceQuote) Total(quantity int) decimal.Decimal {
	return q.EffectiveUnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
