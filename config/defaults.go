package config

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	defaultMaxRequestBodySize = "2MB"
	defaultWorkerPort         = 8081
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "medium"
	defaultLeadDays           = 3
	defaultReminderInterval   = 24 * time.Hour
	defaultExpiredInterval    = time.Hour
	defaultDispatchWorkers    = 8
	defaultShelfLifeDays      = 7
	defaultRecommendations    = 10
	defaultMaxImageSize       = "5MiB"
	defaultMetricsPath        = "/metrics"
)

// finalize fills defaults, resolves derived values and validates cfg.
func finalize(cfg *Config) error {
	applyDefaults(cfg)

	if cfg.Storage.MaxImageBytes <= 0 {
		size, err := humanize.ParseBytes(cfg.Storage.MaxImageSize)
		if err != nil {
			return errors.Wrapf(err, "storage.maxImageSize %q", cfg.Storage.MaxImageSize)
		}
		cfg.Storage.MaxImageBytes = int64(size)
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Worker = orNew(cfg.Worker)
	setIfZero(&cfg.Worker.Port, defaultWorkerPort)

	cfg.QRCode = orNew(cfg.QRCode)
	setIfZero(&cfg.QRCode.Size, defaultQRCodeSize)
	setIfZero(&cfg.QRCode.ErrorCorrectionLevel, defaultQRCodeLevel)

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{Enabled: true}
	}
	setIfZero(&cfg.Reminder.LeadDays, defaultLeadDays)
	setIfZero(&cfg.Reminder.Interval, defaultReminderInterval)
	setIfZero(&cfg.Reminder.ExpiredInterval, defaultExpiredInterval)
	setIfZero(&cfg.Reminder.DispatchConcurrency, defaultDispatchWorkers)

	cfg.Shopping = orNew(cfg.Shopping)
	setIfZero(&cfg.Shopping.DefaultShelfLifeDays, defaultShelfLifeDays)

	cfg.Recommendation = orNew(cfg.Recommendation)
	setIfZero(&cfg.Recommendation.Limit, defaultRecommendations)

	cfg.Storage = orNew(cfg.Storage)
	setIfZero(&cfg.Storage.MaxImageSize, defaultMaxImageSize)

	cfg.Metrics = orNew(cfg.Metrics)
	setIfZero(&cfg.Metrics.Path, defaultMetricsPath)
}

func orNew[T any](p *T) *T {
	if p == nil {
		return new(T)
	}

	return p
}

// setIfZero also replaces negative numbers.
func setIfZero[T int | string | time.Duration](field *T, value T) {
	var zero T
	if *field == zero || *field < zero {
		*field = value
	}
}
