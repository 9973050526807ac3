package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDiscount_Apply(t *testing.T) {
	tests := []struct {
		name     string
		discount Discount
		base     string
		want     string
	}{
		{
			name:     "percentage takes value percent off",
			discount: Discount{Type: DiscountPercentage, Value: dec("10")},
			base:     "4.00",
			want:     "3.60",
		},
		{
			name:     "percentage of zero keeps base",
			discount: Discount{Type: DiscountPercentage, Value: dec("0")},
			base:     "4.00",
			want:     "4.00",
		},
		{
			name:     "percentage of hundred is free",
			discount: Discount{Type: DiscountPercentage, Value: dec("100")},
			base:     "4.00",
			want:     "0",
		},
		{
			name:     "fixed subtracts amount",
			discount: Discount{Type: DiscountFixed, Value: dec("1.25")},
			base:     "5.00",
			want:     "3.75",
		},
		{
			name:     "fixed is clamped at zero",
			discount: Discount{Type: DiscountFixed, Value: dec("7.00")},
			base:     "5.00",
			want:     "0",
		},
		{
			name:     "percentage above hundred is clamped at zero",
			discount: Discount{Type: DiscountPercentage, Value: dec("150")},
			base:     "5.00",
			want:     "0",
		},
		{
			name:     "unknown type keeps base",
			discount: Discount{Type: DiscountType("bogo"), Value: dec("50")},
			base:     "5.00",
			want:     "5.00",
		},
		{
			name:     "percentage keeps sub-cent precision",
			discount: Discount{Type: DiscountPercentage, Value: dec("15")},
			base:     "4.99",
			want:     "4.2415",
		},
		{
			name:     "small percentage still lowers a tiny price",
			discount: Discount{Type: DiscountPercentage, Value: dec("10")},
			base:     "0.04",
			want:     "0.036",
		},
		{
			name:     "fractional percentage is exact",
			discount: Discount{Type: DiscountPercentage, Value: dec("12.5")},
			base:     "3.33",
			want:     "2.91375",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.discount.Apply(dec(tt.base))
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDiscount_IsActive(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 5, 10, 23, 59, 59, 0, time.UTC)
	discount := Discount{ValidFrom: from, ValidUntil: until}

	assert.True(t, discount.IsActive(from), "window start is inclusive")
	assert.True(t, discount.IsActive(until), "window end is inclusive")
	assert.True(t, discount.IsActive(from.Add(48*time.Hour)))
	assert.False(t, discount.IsActive(from.Add(-time.Second)))
	assert.False(t, discount.IsActive(until.Add(time.Second)))
}

func TestParseDiscountType(t *testing.T) {
	kind, ok := ParseDiscountType(" Percentage ")
	assert.True(t, ok)
	assert.Equal(t, DiscountPercentage, kind)

	kind, ok = ParseDiscountType("fixed")
	assert.True(t, ok)
	assert.Equal(t, DiscountFixed, kind)

	_, ok = ParseDiscountType("bogo")
	assert.False(t, ok)
}

func TestPriceQuote_Total(t *testing.T) {
	quote := PriceQuote{
		Listing:            &SupplierListing{UnitPrice: dec("4.00")},
		EffectiveUnitPrice: dec("3.60"),
	}

	assert.True(t, dec("18.00").Equal(quote.Total(5)))
	assert.True(t, dec("4.00").Equal(quote.UnitPrice()))
}

func TestPriceQuote_TotalRoundsOnlyTheLine(t *testing.T) {
	discount := Discount{Type: DiscountPercentage, Value: dec("15")}
	quote := PriceQuote{
		Listing:            &SupplierListing{UnitPrice: dec("4.99")},
		Discount:           &discount,
		EffectiveUnitPrice: discount.Apply(dec("4.99")),
	}

	assert.Equal(t, "424.15", quote.Total(100).StringFixed(2))
	assert.Equal(t, "4.24", quote.Total(1).StringFixed(2))
	assert.False(t, quote.EffectiveUnitPrice.Equal(quote.UnitPrice()))
}
