package impl

import (
	"bytes"
	"context"
	"time"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type pricingService struct {
	listingRepo  repository.ListingRepository
	discountRepo repository.DiscountRepository
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	DiscountRepo repository.DiscountRepository
}

// NewPricingService creates a new pricing service instance
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		listingRepo:  params.ListingRepo,
		discountRepo: params.DiscountRepo,
	}
}

// ResolvePrice picks the cheapest listing and applies the best discount active at at.
func (s *pricingService) ResolvePrice(ctx context.Context, productID uuid.UUID, at time.Time) (*entity.PriceQuote, error) {
	listings, err := s.listingRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by product")
	}

	listing := cheapestListing(listings)
	if listing == nil {
		return nil, domainerrors.ErrNotAvailable
	}

	discounts, err := s.discountRepo.FindActive(ctx, productID, listing.SupplierID, at)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active discounts")
	}

	return QuoteListing(listing, discounts, at), nil
}

// QuoteTotal resolves the unit price and multiplies it by quantity.
func (s *pricingService) QuoteTotal(ctx context.Context, productID uuid.UUID, quantity int, at time.Time) (*entity.PriceQuote, decimal.Decimal, error) {
	if quantity <= 0 {
		return nil, decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	quote, err := s.ResolvePrice(ctx, productID, at)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return quote, quote.Total(quantity), nil
}

// QuoteListings prices every listing of a product, cheapest first.
func (s *pricingService) QuoteListings(ctx context.Context, productID uuid.UUID, at time.Time) ([]*entity.PriceQuote, error) {
	listings, err := s.listingRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by product")
	}
	if len(listings) == 0 {
		return []*entity.PriceQuote{}, nil
	}

	discounts, err := s.discountRepo.FindActiveForProduct(ctx, productID, at)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active discounts for product")
	}

	quotes := make([]*entity.PriceQuote, 0, len(listings))
	for _, listing := range listings {
		quotes = append(quotes, QuoteListing(listing, discounts, at))
	}

	return quotes, nil
}

// QuoteListing prices one listing. Discounts that belong to another pair or are
// not active at at are ignored. When several apply, the lowest resulting price
// wins; ties go to the earliest valid_from, then the lowest id.
func QuoteListing(listing *entity.SupplierListing, discounts []*entity.Discount, at time.Time) *entity.PriceQuote {
	quote := &entity.PriceQuote{
		Listing:            listing,
		EffectiveUnitPrice: listing.UnitPrice,
		At:                 at,
	}

	for _, discount := range discounts {
		if discount.ProductID != listing.ProductID || discount.SupplierID != listing.SupplierID {
			continue
		}
		if !discount.IsActive(at) {
			continue
		}

		price := discount.Apply(listing.UnitPrice)
		if price.GreaterThan(listing.UnitPrice) {
			continue
		}

		switch {
		case quote.Discount == nil,
			price.LessThan(quote.EffectiveUnitPrice),
			price.Equal(quote.EffectiveUnitPrice) && discountBefore(discount, quote.Discount):
			quote.Discount = discount
			quote.EffectiveUnitPrice = price
		}
	}

	return quote
}

func cheapestListing(listings []*entity.SupplierListing) *entity.SupplierListing {
	var best *entity.SupplierListing
	for _, listing := range listings {
		if best == nil || listingBefore(listing, best) {
			best = listing
		}
	}

	return best
}

func listingBefore(a, b *entity.SupplierListing) bool {
	if c := a.UnitPrice.Cmp(b.UnitPrice); c != 0 {
		return c < 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}

	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func discountBefore(a, b *entity.Discount) bool {
	if !a.ValidFrom.Equal(b.ValidFrom) {
		return a.ValidFrom.Before(b.ValidFrom)
	}

	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}
