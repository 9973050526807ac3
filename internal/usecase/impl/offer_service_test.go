package impl

import (
	"context"
	"testing"
	"time"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	mockRepo "ecocart/internal/mocks/repository"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixtures struct {
	service      usecase.OfferUsecase
	supplierRepo *mockRepo.MockSupplierRepository
	productRepo  *mockRepo.MockProductRepository
	listingRepo  *mockRepo.MockListingRepository
	discountRepo *mockRepo.MockDiscountRepository
	vendor       entity.Caller
	supplier     *entity.Supplier
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	vendor := newVendor()
	fx := offerServiceFixtures{
		supplierRepo: mockRepo.NewMockSupplierRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		listingRepo:  mockRepo.NewMockListingRepository(t),
		discountRepo: mockRepo.NewMockDiscountRepository(t),
		vendor:       vendor,
		supplier:     &entity.Supplier{ID: uuid.New(), UserID: vendor.UserID, CompanyName: "Green Farm"},
	}

	fx.service = NewOfferService(OfferServiceParams{
		SupplierRepo: fx.supplierRepo,
		ProductRepo:  fx.productRepo,
		ListingRepo:  fx.listingRepo,
		DiscountRepo: fx.discountRepo,
		Clock:        fixedClock{now: referenceNow},
		Logger:       newDiscardLogger(),
	})
	fx.supplierRepo.EXPECT().FindByUserID(mock.Anything, vendor.UserID).Return(fx.supplier, nil).Maybe()

	return fx
}

func TestOfferService_CreateListing(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.listingRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(listing *entity.SupplierListing) bool {
			return listing.SupplierID == fx.supplier.ID && listing.UnitPrice.Equal(dec("2.35"))
		})).
		Return(nil)

	listing, err := fx.service.CreateListing(ctx, fx.vendor, &usecase.ListingInput{
		ProductID: productID,
		UnitPrice: dec("2.349"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockInStock, listing.StockStatus)
}

func TestOfferService_CreateListing_Duplicate(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.listingRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateListing)

	_, err := fx.service.CreateListing(ctx, fx.vendor, &usecase.ListingInput{ProductID: productID, UnitPrice: dec("1")})
	assert.ErrorIs(t, err, domainerrors.ErrListingAlreadyExists)
}

func TestOfferService_CreateListing_NegativePrice(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.CreateListing(context.Background(), fx.vendor, &usecase.ListingInput{ProductID: uuid.New(), UnitPrice: dec("-1")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_UpdateListing_OtherSupplier(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	foreign := newListing(uuid.New(), "3.00", referenceNow)

	fx.listingRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

	_, err := fx.service.UpdateListing(ctx, fx.vendor, foreign.ID, &usecase.ListingInput{UnitPrice: dec("1.00")})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestOfferService_DeleteListing(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	own := newListing(uuid.New(), "3.00", referenceNow)
	own.SupplierID = fx.supplier.ID

	fx.listingRepo.EXPECT().FindByID(ctx, own.ID).Return(own, nil)
	fx.listingRepo.EXPECT().Delete(ctx, own.ID).Return(nil)

	require.NoError(t, fx.service.DeleteListing(ctx, fx.vendor, own.ID))
}

func TestOfferService_CreateDiscount(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	valid := &usecase.DiscountInput{
		Type:       "fixed",
		Value:      dec("0.50"),
		ValidFrom:  referenceNow,
		ValidUntil: referenceNow.Add(72 * time.Hour),
	}

	t.Run("on own listing", func(t *testing.T) {
		fx := createTestOfferService(t)
		own := newListing(productID, "3.00", referenceNow)
		own.SupplierID = fx.supplier.ID

		fx.listingRepo.EXPECT().FindByProduct(ctx, productID).Return([]*entity.SupplierListing{own}, nil)
		fx.discountRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(d *entity.Discount) bool {
				return d.Type == entity.DiscountFixed && d.SupplierID == fx.supplier.ID && d.ProductID == productID
			})).
			Return(nil)

		discount, err := fx.service.CreateDiscount(ctx, fx.vendor, productID, valid)
		require.NoError(t, err)
		assert.True(t, discount.IsActive(referenceNow))
	})

	t.Run("without a listing", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.listingRepo.EXPECT().FindByProduct(ctx, productID).Return([]*entity.SupplierListing{}, nil)

		_, err := fx.service.CreateDiscount(ctx, fx.vendor, productID, valid)
		assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
	})

	t.Run("window ends before it starts", func(t *testing.T) {
		fx := createTestOfferService(t)
		input := *valid
		input.ValidUntil = referenceNow.Add(-time.Hour)

		_, err := fx.service.CreateDiscount(ctx, fx.vendor, productID, &input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDiscount)
	})
}

func TestValidateDiscountInput(t *testing.T) {
	base := usecase.DiscountInput{ValidFrom: referenceNow, ValidUntil: referenceNow.Add(time.Hour)}

	tests := []struct {
		name    string
		kind    string
		value   string
		wantErr bool
	}{
		{name: "percentage", kind: "percentage", value: "15"},
		{name: "full percentage", kind: "PERCENTAGE", value: "100"},
		{name: "fixed", kind: "fixed", value: "2.50"},
		{name: "unknown type", kind: "bogo", value: "1", wantErr: true},
		{name: "negative", kind: "fixed", value: "-1", wantErr: true},
		{name: "over 100 percent", kind: "percentage", value: "100.01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			input.Type = tt.kind
			input.Value = dec(tt.value)

			_, err := validateDiscountInput(&input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidDiscount)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOfferService_ActiveDiscounts(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	active := []*entity.Discount{{ID: uuid.New()}}

	fx.discountRepo.EXPECT().ListActive(ctx, referenceNow).Return(active, nil)

	got, err := fx.service.ActiveDiscounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, active, got)
}

func TestOfferService_RequiresVendor(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.MyListings(context.Background(), newCaller())
	assert.ErrorIs(t, err, domainerrors.ErrVendorRequired)
}
