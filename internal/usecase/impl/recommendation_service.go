package impl

import (
	"context"

	"ecocart/config"
	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recommendationService struct {
	itemRepo     repository.ShoppingItemRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	clock        service.Clock
	limit        int
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	ItemRepo     repository.ShoppingItemRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Clock        service.Clock
	Config       *config.Config
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		itemRepo:     params.ItemRepo,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		clock:        params.Clock,
		limit:        params.Config.Recommendation.Limit,
	}
}

// Recommend suggests unseen products from the caller's most bought category and
// products currently on discount. Without history only the discounted bucket is filled.
func (s *recommendationService) Recommend(ctx context.Context, caller entity.Caller) (*entity.Recommendation, error) {
	now := s.clock.Now()

	discounted, err := s.productRepo.FindDiscounted(ctx, now, s.limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find discounted products")
	}

	recommendation := &entity.Recommendation{
		CategoryMatches:   []*entity.Product{},
		DiscountedMatches: discounted,
	}

	counts, err := s.itemRepo.CountCategoriesForOwner(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}

	top := topCategory(counts)
	if top == nil {
		return recommendation, nil
	}
	recommendation.HasHistory = true

	category, err := s.categoryRepo.FindByID(ctx, top.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find top category")
	}
	recommendation.TopCategory = category

	seen, err := s.itemRepo.FindProductIDsForOwner(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find purchased products")
	}

	matches, err := s.productRepo.FindByCategoryExcluding(ctx, top.CategoryID, seen, s.limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category matches")
	}
	recommendation.CategoryMatches = matches

	return recommendation, nil
}

// topCategory picks the highest count, breaking ties by category code.
// The repository already orders this way; the scan keeps the rule local.
func topCategory(counts []*entity.CategoryCount) *entity.CategoryCount {
	var top *entity.CategoryCount
	for _, count := range counts {
		if count.Count <= 0 {
			continue
		}
		if top == nil || count.Count > top.Count || (count.Count == top.Count && count.Code < top.Code) {
			top = count
		}
	}

	return top
}
