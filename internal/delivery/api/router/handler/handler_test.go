package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"ecocart/internal/delivery/api/validator"
	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds a request context; a non-nil caller is attached as if authenticated.
func newContext(method, target, body string, cl *entity.Caller) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if cl != nil {
		deliverycontext.SetCaller(c, *cl)
	}

	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)

	return c
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func shopper() *entity.Caller {
	return &entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
}

func vendor() *entity.Caller {
	return &entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleVendor}}
}
