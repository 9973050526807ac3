package usecase

import (
	"context"

	"ecocart/internal/domain/entity"
)

// RecommendationUsecase mines purchase history for suggestions.
type RecommendationUsecase interface {
	Recommend(ctx context.Context, caller entity.Caller) (*entity.Recommendation, error)
}

// DashboardUsecase serves admin statistics.
type DashboardUsecase interface {
	Dashboard(ctx context.Context, caller entity.Caller) (*entity.DashboardStats, error)
}
