package handler

import (
	"net/http"
	"testing"

	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	mockUsecase "ecocart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInsightHandler(t *testing.T) {
	recommendationUC := mockUsecase.NewMockRecommendationUsecase(t)
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewInsightHandler(InsightHandlerParams{
		RecommendationUC: recommendationUC,
		DashboardUC:      dashboardUC,
		Logger:           discardLogger(),
	})

	t.Run("recommend without history", func(t *testing.T) {
		cl := shopper()
		recommendationUC.EXPECT().Recommend(mock.Anything, *cl).Return(&entity.Recommendation{}, nil).Once()

		c, rec := newContext(http.MethodGet, "/", "", cl)
		require.NoError(t, h.Recommend(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"has_history":false`)
	})

	t.Run("dashboard", func(t *testing.T) {
		cl := &entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
		dashboardUC.EXPECT().Dashboard(mock.Anything, *cl).Return(&entity.DashboardStats{
			UserCount:   12,
			ActiveUsers: 5,
			TopProducts: []*entity.ProductPopularity{{ProductID: uuid.New(), ProductName: "Eggs", Count: 9}},
		}, nil).Once()

		c, rec := newContext(http.MethodGet, "/", "", cl)
		require.NoError(t, h.Dashboard(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active_users":5`)
	})

	t.Run("dashboard for non admin", func(t *testing.T) {
		cl := shopper()
		dashboardUC.EXPECT().Dashboard(mock.Anything, *cl).Return(nil, domainerrors.ErrAdminRequired).Once()

		c, rec := newContext(http.MethodGet, "/", "", cl)
		require.NoError(t, h.Dashboard(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
