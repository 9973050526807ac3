package handler

import (
	"log/slog"
	"net/http"

	"ecocart/internal/delivery/api/response"
	"ecocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InsightHandlerParams holds dependencies for InsightHandler, injected by Fx.
type InsightHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
	DashboardUC      usecase.DashboardUsecase
	Logger           *slog.Logger
}

// InsightHandler serves recommendations and the admin dashboard.
type InsightHandler struct {
	recommendationUC usecase.RecommendationUsecase
	dashboardUC      usecase.DashboardUsecase
	logger           *slog.Logger
}

// NewInsightHandler is the constructor for InsightHandler
func NewInsightHandler(params InsightHandlerParams) *InsightHandler {
	return &InsightHandler{
		recommendationUC: params.RecommendationUC,
		dashboardUC:      params.DashboardUC,
		logger:           params.Logger,
	}
}

// Recommend returns suggestions mined from the caller's history
func (h *InsightHandler) Recommend(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	recommendation, err := h.recommendationUC.Recommend(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recommendation)
}

// Dashboard returns the admin overview
func (h *InsightHandler) Dashboard(c echo.Context) error {
	cl, ok, err := caller(c)
	if !ok {
		return err
	}

	stats, err := h.dashboardUC.Dashboard(c.Request().Context(), cl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
