package impl

import (
	"context"
	"log/slog"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type offerService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	listingRepo  repository.ListingRepository
	discountRepo repository.DiscountRepository
	clock        service.Clock
	logger       *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
	ProductRepo  repository.ProductRepository
	ListingRepo  repository.ListingRepository
	DiscountRepo repository.DiscountRepository
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewOfferService creates a new offer service instance
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		supplierRepo: params.SupplierRepo,
		productRepo:  params.ProductRepo,
		listingRepo:  params.ListingRepo,
		discountRepo: params.DiscountRepo,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (s *offerService) CreateListing(ctx context.Context, caller entity.Caller, input *usecase.ListingInput) (*entity.SupplierListing, error) {
	supplier, err := callerSupplier(ctx, s.supplierRepo, caller)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(input.UnitPrice); err != nil {
		return nil, err
	}
	stockStatus, err := normalizeStockStatus(input.StockStatus)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	listing := &entity.SupplierListing{
		ProductID:   input.ProductID,
		SupplierID:  supplier.ID,
		Supplier:    supplier,
		UnitPrice:   input.UnitPrice.Round(2),
		StockStatus: stockStatus,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrDuplicateListing) {
			return nil, domainerrors.ErrListingAlreadyExists.WithDetails(input.ProductID.String())
		}

		return nil, errors.Wrap(err, "failed to create listing")
	}

	return listing, nil
}

func (s *offerService) UpdateListing(ctx context.Context, caller entity.Caller, listingID uuid.UUID, input *usecase.ListingInput) (*entity.SupplierListing, error) {
	listing, err := s.ownListing(ctx, caller, listingID)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(input.UnitPrice); err != nil {
		return nil, err
	}
	stockStatus, err := normalizeStockStatus(input.StockStatus)
	if err != nil {
		return nil, err
	}

	listing.UnitPrice = input.UnitPrice.Round(2)
	listing.StockStatus = stockStatus
	if err := s.listingRepo.Update(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to update listing")
	}

	return listing, nil
}

func (s *offerService) DeleteListing(ctx context.Context, caller entity.Caller, listingID uuid.UUID) error {
	if _, err := s.ownListing(ctx, caller, listingID); err != nil {
		return err
	}

	if err := s.listingRepo.Delete(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	return nil
}

func (s *offerService) MyListings(ctx context.Context, caller entity.Caller) ([]*entity.SupplierListing, error) {
	supplier, err := callerSupplier(ctx, s.supplierRepo, caller)
	if err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.FindBySupplier(ctx, supplier.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by supplier")
	}

	return listings, nil
}

// CreateDiscount adds a discount on the caller's own listing of productID.
func (s *offerService) CreateDiscount(ctx context.Context, caller entity.Caller, productID uuid.UUID, input *usecase.DiscountInput) (*entity.Discount, error) {
	supplier, err := callerSupplier(ctx, s.supplierRepo, caller)
	if err != nil {
		return nil, err
	}
	discountType, err := validateDiscountInput(input)
	if err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by product")
	}
	if !hasSupplierListing(listings, supplier.ID) {
		return nil, domainerrors.ErrListingNotFound.WithDetails("list the product before discounting it")
	}

	discount := &entity.Discount{
		ProductID:  productID,
		SupplierID: supplier.ID,
		Type:       discountType,
		Value:      input.Value,
		ValidFrom:  input.ValidFrom,
		ValidUntil: input.ValidUntil,
	}
	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to create discount")
	}

	s.logger.Info("Discount created",
		slog.String("discount_id", discount.ID.String()),
		slog.String("product_id", productID.String()),
		slog.String("type", string(discountType)),
	)

	return discount, nil
}

func (s *offerService) UpdateDiscount(ctx context.Context, caller entity.Caller, discountID uuid.UUID, input *usecase.DiscountInput) (*entity.Discount, error) {
	discount, err := s.ownDiscount(ctx, caller, discountID)
	if err != nil {
		return nil, err
	}
	discountType, err := validateDiscountInput(input)
	if err != nil {
		return nil, err
	}

	discount.Type = discountType
	discount.Value = input.Value
	discount.ValidFrom = input.ValidFrom
	discount.ValidUntil = input.ValidUntil
	if err := s.discountRepo.Update(ctx, discount); err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to update discount")
	}

	return discount, nil
}

func (s *offerService) DeleteDiscount(ctx context.Context, caller entity.Caller, discountID uuid.UUID) error {
	if _, err := s.ownDiscount(ctx, caller, discountID); err != nil {
		return err
	}

	if err := s.discountRepo.Delete(ctx, discountID); err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return domainerrors.ErrDiscountNotFound
		}

		return errors.Wrap(err, "failed to delete discount")
	}

	return nil
}

func (s *offerService) MyDiscounts(ctx context.Context, caller entity.Caller) ([]*entity.Discount, error) {
	supplier, err := callerSupplier(ctx, s.supplierRepo, caller)
	if err != nil {
		return nil, err
	}

	discounts, err := s.discountRepo.FindBySupplier(ctx, supplier.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find discounts by supplier")
	}

	return discounts, nil
}

func (s *offerService) ActiveDiscounts(ctx context.Context) ([]*entity.Discount, error) {
	discounts, err := s.discountRepo.ListActive(ctx, s.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active discounts")
	}

	return discounts, nil
}

func (s *offerService) ensureProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	return nil
}

// ownListing loads a listing of the caller's supplier. Other suppliers'
// listings are reported as missing.
func (s *offerService) ownListing(ctx context.Context, caller entity.Caller, listingID uuid.UUID) (*entity.SupplierListing, error) {
	supplier, err := callerSupplier(ctx, s.supplierRepo, caller)
	if err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}
	if listing.SupplierID != supplier.ID {
		return nil, domainerrors.ErrListingNotFound
	}

	return listing, nil
}

func (s *offerService) ownDiscount(ctx context.Context, caller entity.Caller, discountID uuid.UUID) (*entity.Discount, error) {
	supplier, err := callerSupplier(ctx, s.supplierRepo, caller)
	if err != nil {
		return nil, err
	}

	discount, err := s.discountRepo.FindByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}
	if discount.SupplierID != supplier.ID {
		return nil, domainerrors.ErrDiscountNotFound
	}

	return discount, nil
}

// callerSupplier returns the supplier profile of a vendor caller.
func callerSupplier(ctx context.Context, supplierRepo repository.SupplierRepository, caller entity.Caller) (*entity.Supplier, error) {
	if !caller.IsVendor() {
		return nil, domainerrors.ErrVendorRequired
	}

	supplier, err := supplierRepo.FindByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound.WithDetails("register a supplier profile first")
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return supplier, nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return nil
}

func normalizeStockStatus(status entity.StockStatus) (entity.StockStatus, error) {
	if status == "" {
		return entity.StockInStock, nil
	}
	if !status.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown stock status")
	}

	return status, nil
}

// validateDiscountInput rejects unknown types, negative values, percentages
// above 100 and windows that end before they start.
func validateDiscountInput(input *usecase.DiscountInput) (entity.DiscountType, error) {
	discountType, ok := entity.ParseDiscountType(input.Type)
	if !ok {
		return "", domainerrors.ErrInvalidDiscount.WithDetails("unknown discount type")
	}
	if input.Value.IsNegative() {
		return "", domainerrors.ErrInvalidDiscount.WithDetails("discount value must not be negative")
	}
	if discountType == entity.DiscountPercentage && input.Value.GreaterThan(decimal.NewFromInt(100)) {
		return "", domainerrors.ErrInvalidDiscount.WithDetails("percentage must not exceed 100")
	}
	if input.ValidFrom.IsZero() || input.ValidUntil.IsZero() {
		return "", domainerrors.ErrInvalidDiscount.WithDetails("valid_from and valid_until are required")
	}
	if input.ValidUntil.Before(input.ValidFrom) {
		return "", domainerrors.ErrInvalidDiscount.WithDetails("valid_until must not precede valid_from")
	}

	return discountType, nil
}
