package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	mockRepo "ecocart/internal/mocks/repository"
	mockSvc "ecocart/internal/mocks/service"
	mockUsecase "ecocart/internal/mocks/usecase"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	supplierRepo *mockRepo.MockSupplierRepository
	productRepo  *mockRepo.MockProductRepository
	listingRepo  *mockRepo.MockListingRepository
	discountRepo *mockRepo.MockDiscountRepository
	pricing      *mockUsecase.MockPricingUsecase
	txManager    *mockRepo.MockTransactionManager
	txFactory    *mockRepo.MockRepositoryFactory
	storage      *mockSvc.MockImageStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		supplierRepo: mockRepo.NewMockSupplierRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		listingRepo:  mockRepo.NewMockListingRepository(t),
		discountRepo: mockRepo.NewMockDiscountRepository(t),
		pricing:      mockUsecase.NewMockPricingUsecase(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		txFactory:    mockRepo.NewMockRepositoryFactory(t),
		storage:      mockSvc.NewMockImageStorage(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		CategoryRepo: fx.categoryRepo,
		SupplierRepo: fx.supplierRepo,
		ProductRepo:  fx.productRepo,
		ListingRepo:  fx.listingRepo,
		Pricing:      fx.pricing,
		TxManager:    fx.txManager,
		ImageStorage: fx.storage,
		Clock:        fixedClock{now: referenceNow},
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func newVendor() entity.Caller {
	return entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleVendor}}
}

func TestCatalogService_CreateProduct_WithDiscount(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	vendor := newVendor()
	supplier := &entity.Supplier{ID: uuid.New(), UserID: vendor.UserID, CompanyName: "Green Farm"}
	dairy := &entity.Category{ID: uuid.New(), Code: "dairy", Label: "Dairy"}

	fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(supplier, nil)
	fx.categoryRepo.EXPECT().FindByCode(ctx, "dairy").Return(dairy, nil)
	fx.txFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.txFactory.EXPECT().NewListingRepository().Return(fx.listingRepo)
	fx.txFactory.EXPECT().NewDiscountRepository().Return(fx.discountRepo)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
	productID := uuid.New()
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) { product.ID = productID }).
		Return(nil)
	fx.listingRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(listing *entity.SupplierListing) bool {
			return listing.ProductID == productID && listing.StockStatus == entity.StockInStock
		})).
		Return(nil)
	fx.discountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Discount")).Return(nil)

	detail, err := fx.service.CreateProduct(ctx, vendor, &usecase.CreateProductInput{
		Name:         "Milk",
		CategoryCode: "Dairy",
		UnitPrice:    dec("4.00"),
		Discount: &usecase.DiscountInput{
			Type:       "percentage",
			Value:      dec("10"),
			ValidFrom:  referenceNow.Add(-time.Hour),
			ValidUntil: referenceNow.Add(24 * time.Hour),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, productID, detail.Product.ID)
	require.NotNil(t, detail.Best)
	assert.Equal(t, "4.00", detail.Best.UnitPrice().StringFixed(2))
	assert.Equal(t, "3.60", detail.Best.EffectiveUnitPrice.StringFixed(2))
}

func TestCatalogService_CreateProduct_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("shopper is not a vendor", func(t *testing.T) {
		fx := createTestCatalogService(t)
		_, err := fx.service.CreateProduct(ctx, newCaller(), &usecase.CreateProductInput{Name: "Milk"})
		assert.ErrorIs(t, err, domainerrors.ErrVendorRequired)
	})

	t.Run("vendor without supplier profile", func(t *testing.T) {
		fx := createTestCatalogService(t)
		vendor := newVendor()
		fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(nil, repository.ErrSupplierNotFound)

		_, err := fx.service.CreateProduct(ctx, vendor, &usecase.CreateProductInput{Name: "Milk"})
		assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
	})

	t.Run("percentage above 100", func(t *testing.T) {
		fx := createTestCatalogService(t)
		vendor := newVendor()
		fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(&entity.Supplier{ID: uuid.New()}, nil)

		_, err := fx.service.CreateProduct(ctx, vendor, &usecase.CreateProductInput{
			Name:      "Milk",
			UnitPrice: dec("4.00"),
			Discount: &usecase.DiscountInput{
				Type: "percentage", Value: dec("120"),
				ValidFrom: referenceNow, ValidUntil: referenceNow.Add(time.Hour),
			},
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDiscount)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCatalogService(t)
		vendor := newVendor()
		fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(&entity.Supplier{ID: uuid.New()}, nil)
		fx.categoryRepo.EXPECT().FindByCode(ctx, "spices").Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.CreateProduct(ctx, vendor, &usecase.CreateProductInput{
			Name: "Saffron", CategoryCode: "spices", UnitPrice: dec("9.99"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestCatalogService_GetProduct_PicksCheapestQuote(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Milk"}

	pricey := &entity.PriceQuote{Listing: newListing(product.ID, "4.50", referenceNow), EffectiveUnitPrice: dec("4.50")}
	cheap := &entity.PriceQuote{Listing: newListing(product.ID, "4.00", referenceNow), EffectiveUnitPrice: dec("3.60")}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.pricing.EXPECT().QuoteListings(ctx, product.ID, referenceNow).Return([]*entity.PriceQuote{pricey, cheap}, nil)

	detail, err := fx.service.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, cheap, detail.Best)
	assert.Len(t, detail.Quotes, 2)
}

func TestCatalogService_SearchProducts_Validation(t *testing.T) {
	fx := createTestCatalogService(t)
	low, high := dec("5"), dec("1")

	_, err := fx.service.SearchProducts(context.Background(), entity.ProductFilter{Sort: "random"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.SearchProducts(context.Background(), entity.ProductFilter{MinPrice: &low, MaxPrice: &high})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	_, err := fx.service.CreateCategory(ctx, newCaller(), "dairy", "Dairy")
	require.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	fx.categoryRepo.EXPECT().Create(ctx, &entity.Category{Code: "dairy", Label: "Dairy"}).Return(repository.ErrDuplicateCategory)
	_, err = fx.service.CreateCategory(ctx, admin, " DAIRY ", "Dairy")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCatalogService_RegisterSupplier_Duplicate(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	vendor := newVendor()

	fx.supplierRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Supplier")).Return(repository.ErrDuplicateSupplier)

	_, err := fx.service.RegisterSupplier(ctx, vendor, "Green Farm")
	assert.ErrorIs(t, err, domainerrors.ErrSupplierAlreadyExists)
}

func TestCatalogService_UploadProductImage(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces previous image", func(t *testing.T) {
		fx := createTestCatalogService(t)
		vendor := newVendor()
		supplier := &entity.Supplier{ID: uuid.New(), UserID: vendor.UserID}
		product := &entity.Product{ID: uuid.New(), Name: "Milk", ImageKey: "products/old.png"}
		listing := newListing(product.ID, "4.00", referenceNow)
		listing.SupplierID = supplier.ID

		fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(supplier, nil)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.listingRepo.EXPECT().FindByProduct(ctx, product.ID).Return([]*entity.SupplierListing{listing}, nil)
		fx.storage.EXPECT().
			Put(ctx, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "products/"+product.ID.String()+"/") && strings.HasSuffix(key, ".png")
			}), "image/png", mock.Anything).
			Return(nil)
		fx.productRepo.EXPECT().SetImageKey(ctx, product.ID, mock.AnythingOfType("string")).Return(nil)
		fx.storage.EXPECT().Delete(ctx, "products/old.png").Return(nil)

		body := bytes.NewReader([]byte("\x89PNG"))
		updated, err := fx.service.UploadProductImage(ctx, vendor, product.ID, "image/png", int64(body.Len()), body)
		require.NoError(t, err)
		assert.NotEqual(t, "products/old.png", updated.ImageKey)
	})

	t.Run("too large", func(t *testing.T) {
		fx := createTestCatalogService(t)
		vendor := newVendor()
		fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(&entity.Supplier{ID: uuid.New()}, nil)

		_, err := fx.service.UploadProductImage(ctx, vendor, uuid.New(), "image/png", 2<<20, strings.NewReader(""))
		assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	})

	t.Run("not an image", func(t *testing.T) {
		fx := createTestCatalogService(t)
		vendor := newVendor()
		fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(&entity.Supplier{ID: uuid.New()}, nil)

		_, err := fx.service.UploadProductImage(ctx, vendor, uuid.New(), "text/plain", 10, strings.NewReader("hello"))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("supplier does not list product", func(t *testing.T) {
		fx := createTestCatalogService(t)
		vendor := newVendor()
		product := &entity.Product{ID: uuid.New(), Name: "Milk"}
		fx.supplierRepo.EXPECT().FindByUserID(ctx, vendor.UserID).Return(&entity.Supplier{ID: uuid.New()}, nil)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.listingRepo.EXPECT().FindByProduct(ctx, product.ID).Return([]*entity.SupplierListing{newListing(product.ID, "4.00", referenceNow)}, nil)

		_, err := fx.service.UploadProductImage(ctx, vendor, product.ID, "image/jpeg", 10, strings.NewReader("jpeg"))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestCatalogService_OpenProductImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	withImage := &entity.Product{ID: uuid.New(), ImageKey: "products/a.png"}
	withoutImage := &entity.Product{ID: uuid.New()}

	fx.productRepo.EXPECT().FindByID(ctx, withImage.ID).Return(withImage, nil)
	fx.productRepo.EXPECT().FindByID(ctx, withoutImage.ID).Return(withoutImage, nil)
	fx.storage.EXPECT().Open(ctx, "products/a.png").Return(io.NopCloser(strings.NewReader("png")), "image/png", nil)

	image, err := fx.service.OpenProductImage(ctx, withImage.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.ContentType)

	_, err = fx.service.OpenProductImage(ctx, withoutImage.ID)
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}
