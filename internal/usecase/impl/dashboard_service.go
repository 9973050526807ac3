package impl

import (
	"context"

	"ecocart/internal/domain/constants"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	userRepo repository.UserRepository
	itemRepo repository.ShoppingItemRepository
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	ItemRepo repository.ShoppingItemRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo: params.UserRepo,
		itemRepo: params.ItemRepo,
	}
}

func (s *dashboardService) Dashboard(ctx context.Context, caller entity.Caller) (*entity.DashboardStats, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrAdminRequired
	}

	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	activeUsers, err := s.userRepo.CountWithLists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}

	topProducts, err := s.itemRepo.TopProducts(ctx, constants.TopProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	return &entity.DashboardStats{
		UserCount:   userCount,
		ActiveUsers: activeUsers,
		TopProducts: topProducts,
	}, nil
}
