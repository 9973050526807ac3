package postgres

import (
	"testing"
	"time"

	"ecocart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestWindowCondition(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	where, args := windowCondition("si.expiration_date", entity.WindowFor(entity.ReminderExpiring, now, 3))
	assert.Equal(t, "si.expiration_date >= ?::date AND si.expiration_date <= ?::date", where)
	assert.Equal(t, []any{"2026-03-10", "2026-03-13"}, args)

	where, args = windowCondition("expiration_date", entity.WindowFor(entity.ReminderExpired, now, 3))
	assert.Equal(t, "expiration_date < ?::date", where)
	assert.Equal(t, []any{"2026-03-10"}, args)
}

func TestDateOnly(t *testing.T) {
	assert.Nil(t, dateOnly(nil))

	stamp := time.Date(2026, 3, 17, 22, 15, 0, 0, time.UTC)
	got := dateOnly(&stamp)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), *got)
}
