package impl

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"ecocart/config"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	categoryRepo  repository.CategoryRepository
	supplierRepo  repository.SupplierRepository
	productRepo   repository.ProductRepository
	listingRepo   repository.ListingRepository
	pricing       usecase.PricingUsecase
	txManager     repository.TransactionManager
	imageStorage  service.ImageStorage
	clock         service.Clock
	maxImageBytes int64
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	SupplierRepo repository.SupplierRepository
	ProductRepo  repository.ProductRepository
	ListingRepo  repository.ListingRepository
	Pricing      usecase.PricingUsecase
	TxManager    repository.TransactionManager
	ImageStorage service.ImageStorage
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:  params.CategoryRepo,
		supplierRepo:  params.SupplierRepo,
		productRepo:   params.ProductRepo,
		listingRepo:   params.ListingRepo,
		pricing:       params.Pricing,
		txManager:     params.TxManager,
		imageStorage:  params.ImageStorage,
		clock:         params.Clock,
		maxImageBytes: params.Config.Storage.MaxImageBytes,
		logger:        params.Logger,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, caller entity.Caller, code, label string) (*entity.Category, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrAdminRequired
	}

	code = strings.ToLower(strings.TrimSpace(code))
	label = strings.TrimSpace(label)
	if code == "" || label == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category code and label are required")
	}

	category := &entity.Category{Code: code, Label: label}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (s *catalogService) RegisterSupplier(ctx context.Context, caller entity.Caller, companyName string) (*entity.Supplier, error) {
	if !caller.IsVendor() {
		return nil, domainerrors.ErrVendorRequired
	}

	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("company name is required")
	}

	supplier := &entity.Supplier{
		UserID:      caller.UserID,
		CompanyName: companyName,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrDuplicateSupplier) {
			return nil, domainerrors.ErrSupplierAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create supplier")
	}

	return supplier, nil
}

func (s *catalogService) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

// CreateProduct creates the product, the caller's listing and the optional
// discount in one transaction.
func (s *catalogService) CreateProduct(ctx context.Context, caller entity.Caller, input *usecase.CreateProductInput) (*usecase.ProductDetail, error) {
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

	var discountType entity.DiscountType
	if input.Discount != nil {
		if discountType, err = validateDiscountInput(input.Discount); err != nil {
			return nil, err
		}
	}

	category, err := s.categoryRepo.FindByCode(ctx, strings.ToLower(strings.TrimSpace(input.CategoryCode)))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WithDetails(input.CategoryCode)
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		CategoryID:  &category.ID,
		Category:    category,
	}
	listing := &entity.SupplierListing{
		SupplierID:  supplier.ID,
		Supplier:    supplier,
		UnitPrice:   input.UnitPrice.Round(2),
		StockStatus: stockStatus,
	}
	var discounts []*entity.Discount

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		listing.ProductID = product.ID
		if err := txRepoFactory.NewListingRepository().Create(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}

		if input.Discount == nil {
			return nil
		}

		discount := &entity.Discount{
			ProductID:  product.ID,
			SupplierID: supplier.ID,
			Type:       discountType,
			Value:      input.Discount.Value,
			ValidFrom:  input.Discount.ValidFrom,
			ValidUntil: input.Discount.ValidUntil,
		}
		if err := txRepoFactory.NewDiscountRepository().Create(ctx, discount); err != nil {
			return errors.Wrap(err, "failed to create discount")
		}
		discounts = append(discounts, discount)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("supplier_id", supplier.ID.String()),
	)

	quote := QuoteListing(listing, discounts, s.clock.Now())

	return &usecase.ProductDetail{
		Product: product,
		Quotes:  []*entity.PriceQuote{quote},
		Best:    quote,
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetail, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	quotes, err := s.pricing.QuoteListings(ctx, productID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	detail := &usecase.ProductDetail{Product: product, Quotes: quotes}
	for _, quote := range quotes {
		if detail.Best == nil || listingBefore(quote.Listing, detail.Best.Listing) {
			detail.Best = quote
		}
	}

	return detail, nil
}

func (s *catalogService) SearchProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	if !filter.Sort.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported sort")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("min price exceeds max price")
	}

	products, err := s.productRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// UploadProductImage stores a new image for a product the caller lists and
// removes the previous one.
func (s *catalogService) UploadProductImage(ctx context.Context, caller entity.Caller, productID uuid.UUID, contentType string, size int64, body io.Reader) (*entity.Product, error) {
	supplier, err := callerSupplier(ctx, s.supplierRepo, caller)
	if err != nil {
		return nil, err
	}

	if size > s.maxImageBytes {
		return nil, domainerrors.ErrImageTooLarge.WithDetails("limit " + humanize.IBytes(uint64(s.maxImageBytes)))
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("an image file is required")
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by product")
	}
	if !hasSupplierListing(listings, supplier.ID) {
		return nil, domainerrors.ErrForbidden.WithDetails("only suppliers listing the product may change its image")
	}

	key := path.Join("products", productID.String(), uuid.NewString()+imageExtension(mediaType))
	if err := s.imageStorage.Put(ctx, key, mediaType, io.LimitReader(body, s.maxImageBytes)); err != nil {
		return nil, errors.Wrap(err, "failed to store product image")
	}

	if err := s.productRepo.SetImageKey(ctx, productID, key); err != nil {
		return nil, errors.Wrap(err, "failed to update product image")
	}

	if product.HasImage() {
		if err := s.imageStorage.Delete(ctx, product.ImageKey); err != nil {
			s.logger.Warn("Failed to delete previous product image",
				slog.String("key", product.ImageKey),
				slog.Any("error", err),
			)
		}
	}
	product.ImageKey = key

	return product, nil
}

func (s *catalogService) OpenProductImage(ctx context.Context, productID uuid.UUID) (*usecase.ProductImage, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.HasImage() {
		return nil, domainerrors.ErrImageNotFound
	}

	body, contentType, err := s.imageStorage.Open(ctx, product.ImageKey)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to open product image")
	}

	return &usecase.ProductImage{Body: body, ContentType: contentType}, nil
}

func (s *catalogService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func hasSupplierListing(listings []*entity.SupplierListing, supplierID uuid.UUID) bool {
	for _, listing := range listings {
		if listing.SupplierID == supplierID {
			return true
		}
	}

	return false
}

func imageExtension(mediaType string) string {
	switch mediaType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
