package impl

import (
	"context"
	"testing"

	"ecocart/internal/domain/entity"
	mockRepo "ecocart/internal/mocks/repository"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recommendationServiceFixtures struct {
	service      usecase.RecommendationUsecase
	itemRepo     *mockRepo.MockShoppingItemRepository
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	fx := recommendationServiceFixtures{
		itemRepo:     mockRepo.NewMockShoppingItemRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
	}

	fx.service = NewRecommendationService(RecommendationServiceParams{
		ItemRepo:     fx.itemRepo,
		ProductRepo:  fx.productRepo,
		CategoryRepo: fx.categoryRepo,
		Clock:        fixedClock{now: referenceNow},
		Config:       newTestConfig(),
	})

	return fx
}

func TestRecommendationService_Recommend_DairyHistory(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	caller := newCaller()

	dairy := &entity.Category{ID: uuid.New(), Code: "dairy", Label: "Dairy"}
	bakery := &entity.Category{ID: uuid.New(), Code: "bakery", Label: "Bakery"}
	milk := uuid.New()
	cheese := &entity.Product{ID: uuid.New(), Name: "Cheese", CategoryID: &dairy.ID}
	bread := &entity.Product{ID: uuid.New(), Name: "Bread", CategoryID: &bakery.ID}

	fx.productRepo.EXPECT().FindDiscounted(ctx, referenceNow, 10).Return([]*entity.Product{bread}, nil)
	fx.itemRepo.EXPECT().CountCategoriesForOwner(ctx, caller.UserID).Return([]*entity.CategoryCount{
		{CategoryID: dairy.ID, Code: "dairy", Count: 3},
		{CategoryID: bakery.ID, Code: "bakery", Count: 1},
	}, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, dairy.ID).Return(dairy, nil)
	fx.itemRepo.EXPECT().FindProductIDsForOwner(ctx, caller.UserID).Return([]uuid.UUID{milk}, nil)
	fx.productRepo.EXPECT().FindByCategoryExcluding(ctx, dairy.ID, []uuid.UUID{milk}, 10).Return([]*entity.Product{cheese}, nil)

	rec, err := fx.service.Recommend(ctx, caller)
	require.NoError(t, err)

	assert.True(t, rec.HasHistory)
	assert.Equal(t, dairy, rec.TopCategory)
	assert.Equal(t, []*entity.Product{cheese}, rec.CategoryMatches)
	assert.Equal(t, []*entity.Product{bread}, rec.DiscountedMatches)
}

func TestRecommendationService_Recommend_NoHistory(t *testing.T) {
	fx := createTestRecommendationService(t)
	ctx := context.Background()
	caller := newCaller()
	onSale := &entity.Product{ID: uuid.New(), Name: "Yogurt"}

	fx.productRepo.EXPECT().FindDiscounted(ctx, referenceNow, 10).Return([]*entity.Product{onSale}, nil)
	fx.itemRepo.EXPECT().CountCategoriesForOwner(ctx, caller.UserID).Return([]*entity.CategoryCount{}, nil)

	rec, err := fx.service.Recommend(ctx, caller)
	require.NoError(t, err)

	assert.False(t, rec.HasHistory)
	assert.Nil(t, rec.TopCategory)
	assert.Empty(t, rec.CategoryMatches)
	assert.Equal(t, []*entity.Product{onSale}, rec.DiscountedMatches)
}

func TestTopCategory_TieBreaksByCode(t *testing.T) {
	counts := []*entity.CategoryCount{
		{CategoryID: uuid.New(), Code: "produce", Count: 2},
		{CategoryID: uuid.New(), Code: "dairy", Count: 2},
		{CategoryID: uuid.New(), Code: "bakery", Count: 1},
	}

	top := topCategory(counts)
	require.NotNil(t, top)
	assert.Equal(t, "dairy", top.Code)

	assert.Nil(t, topCategory(nil))
}
