package repository

import (
	"context"

	"ecocart/internal/domain/entity"
)

// ReminderLogRepository records reminder push attempts.
type ReminderLogRepository interface {
	BatchCreate(ctx context.Context, logs []*entity.ReminderLog) error
}
