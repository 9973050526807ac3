package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecocart/config"
	"ecocart/internal/delivery/worker/handler"
	mockUsecase "ecocart/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestWorkerRoutes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081}}

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:     cfg,
			Logger:     logger,
			DeliveryUC: mockUsecase.NewMockReminderDeliveryUsecase(t),
		}),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
