package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrListingAlreadyExists.WithDetails("product 1 / supplier 2")

	assert.ErrorIs(t, err, ErrListingAlreadyExists)
	assert.NotErrorIs(t, err, ErrSupplierAlreadyExists)
	assert.Equal(t, "product 1 / supplier 2", err.Details())
	assert.Empty(t, ErrListingAlreadyExists.Details())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, "LISTING_ALREADY_EXISTS: 您已為此商品建立報價 (product 1 / supplier 2)", err.Error())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrAlreadyPurchased.WrapMessage("mark purchased")

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "ALREADY_PURCHASED", appErr.ErrorCode())
	assert.ErrorIs(t, wrapped, ErrAlreadyPurchased)
}

func TestAsAppError(t *testing.T) {
	_, ok := AsAppError(stderrors.New("connection reset"))
	assert.False(t, ok)

	appErr, ok := AsAppError(pkgerrors.WithStack(ErrDeviceNotFound))
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}
