package impl

import (
	"io"
	"log/slog"
	"time"

	"ecocart/config"

	"github.com/shopspring/decimal"
)

// referenceNow is the instant most tests run at: 2026-03-10 09:30 UTC.
var referenceNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Reminder: &config.ReminderConfig{
			Enabled:             true,
			LeadDays:            3,
			Interval:            24 * time.Hour,
			ExpiredInterval:     time.Hour,
			DispatchConcurrency: 4,
		},
		Shopping:       &config.ShoppingConfig{DefaultShelfLifeDays: 7},
		Recommendation: &config.RecommendationConfig{Limit: 10},
		Storage:        &config.StorageConfig{MaxImageBytes: 1 << 20},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &t
}
