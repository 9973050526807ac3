package postgres

import (
	"context"

	"ecocart/internal/domain/entity"
	"ecocart/internal/domain/repository"
	"ecocart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Upsert keys devices by FCM token. The stale row of the same install
// (same user and device id, older token) is removed in the same transaction.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND device_id = ? AND fcm_token <> ?", deviceM.UserID, deviceM.DeviceID, deviceM.FCMToken).
			Delete(&model.UserDeviceModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to drop previous token")
		}

		return tx.
			Clauses(
				clause.OnConflict{
					Columns: []clause.Column{{Name: "fcm_token"}},
					DoUpdates: clause.AssignmentColumns([]string{
						"user_id", "device_id", "platform", "is_active", "last_seen_at", "updated_at",
					}),
				},
				clause.Returning{},
			).
			Create(deviceM).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to upsert device")
	}

	*device = *toDeviceDomain(deviceM)

	return nil
}

// ListByUser returns the user's devices, newest first.
func (repo *deviceRepository) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active")
	}

	var deviceModels []*model.UserDeviceModel
	if err := query.Order("last_seen_at DESC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateToken replaces the token of an owned device and reactivates it.
func (repo *deviceRepository) UpdateToken(ctx context.Context, userID, id uuid.UUID, fcmToken string) error {
	return repo.updateOwned(ctx, userID, id, map[string]any{
		"fcm_token":    fcmToken,
		"is_active":    true,
		"last_seen_at": gorm.Expr("now()"),
	})
}

// Deactivate stops reminders to an owned device. The row is kept so a later
// token refresh can bring it back.
func (repo *deviceRepository) Deactivate(ctx context.Context, userID, id uuid.UUID) error {
	return repo.updateOwned(ctx, userID, id, map[string]any{"is_active": false})
}

func (repo *deviceRepository) updateOwned(ctx context.Context, userID, id uuid.UUID, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDeviceTokenTaken
		}

		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateTokens disables every device holding one of the rejected tokens.
func (repo *deviceRepository) DeactivateTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active", tokens).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by token")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		Platform:   entity.Platform(data.Platform),
		FCMToken:   data.FCMToken,
		IsActive:   data.IsActive,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		Platform:   string(data.Platform),
		FCMToken:   data.FCMToken,
		IsActive:   data.IsActive,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
	}
}
