package postgres

import (
	"context"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const reminderLogBatchSize = 100

type reminderLogRepository struct {
	db *gorm.DB
}

func NewReminderLogRepository(db *gorm.DB) repository.ReminderLogRepository {
	return &reminderLogRepository{db: db}
}

// BatchCreate inserts push attempt records in chunks.
func (repo *reminderLogRepository) BatchCreate(ctx context.Context, logs []*entity.ReminderLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.ReminderLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromReminderLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, reminderLogBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to create reminder logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

func fromReminderLogDomain(data *entity.ReminderLog) *model.ReminderLogModel {
	var deviceID *uuid.UUID
	if data.DeviceID != uuid.Nil {
		id := data.DeviceID
		deviceID = &id
	}

	return &model.ReminderLogModel{
		ID:           data.ID,
		ItemID:       data.ItemID,
		UserID:       data.UserID,
		DeviceID:     deviceID,
		Kind:         string(data.Kind),
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
