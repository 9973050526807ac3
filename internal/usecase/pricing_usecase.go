package usecase

import (
	"context"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingUsecase resolves what a product costs at a point in time.
type PricingUsecase interface {
	// ResolvePrice picks the cheapest listing of a product and applies its best active discount.
	ResolvePrice(ctx context.Context, productID uuid.UUID, at time.Time) (*entity.PriceQuote, error)

	// QuoteTotal resolves the price and multiplies it by quantity.
	QuoteTotal(ctx context.Context, productID uuid.UUID, quantity int, at time.Time) (*entity.PriceQuote, decimal.Decimal, error)

	// QuoteListings returns one quote per supplier listing of a product.
	QuoteListings(ctx context.Context, productID uuid.UUID, at time.Time) ([]*entity.PriceQuote, error)
}
