package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android web"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

func TestCustomValidator(t *testing.T) {
	cv := New()

	assert.NoError(t, cv.Validate(&sample{Name: "Milk", Quantity: 1}))

	err := cv.Validate(&sample{Quantity: 1})
	assert.EqualError(t, err, "name failed on required")

	err = cv.Validate(&sample{Name: "Milk", Platform: "symbian", Quantity: 1})
	assert.EqualError(t, err, "platform failed on oneof=ios android web")

	err = cv.Validate(&sample{Name: "Milk"})
	assert.EqualError(t, err, "quantity failed on gt=0")
}
