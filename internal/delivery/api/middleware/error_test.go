package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "ecocart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody []string
		hideBody string
	}{
		{
			name:     "app error keeps details",
			err:      errors.Wrap(domainerrors.ErrQuantityDecrease.WithDetails("3 < 5"), "update item"),
			wantCode: http.StatusBadRequest,
			wantBody: []string{"QUANTITY_DECREASE", "3 < 5"},
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantCode: http.StatusMethodNotAllowed,
			wantBody: []string{"HTTP_ERROR", "Method Not Allowed"},
		},
		{
			name:     "unknown error hides cause",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: []string{"INTERNAL_ERROR"},
			hideBody: "connection refused",
		},
	}

	m := NewErrorMiddleware(discardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
			if tt.hideBody != "" {
				assert.NotContains(t, rec.Body.String(), tt.hideBody)
			}
		})
	}
}
