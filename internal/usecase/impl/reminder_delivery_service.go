package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/constants"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/repository"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reminderDeliveryService struct {
	deviceRepo      repository.DeviceRepository
	reminderLogRepo repository.ReminderLogRepository
	notificationSvc service.NotificationService
	clock           service.Clock
	logger          *slog.Logger
}

// ReminderDeliveryServiceParams holds dependencies for ReminderDeliveryService, injected by Fx.
type ReminderDeliveryServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	ReminderLogRepo repository.ReminderLogRepository
	NotificationSvc service.NotificationService `optional:"true"`
	Clock           service.Clock
	Logger          *slog.Logger
}

// NewReminderDeliveryService creates a new reminder delivery service instance
func NewReminderDeliveryService(params ReminderDeliveryServiceParams) usecase.ReminderDeliveryUsecase {
	return &reminderDeliveryService{
		deviceRepo:      params.DeviceRepo,
		reminderLogRepo: params.ReminderLogRepo,
		notificationSvc: params.NotificationSvc,
		clock:           params.Clock,
		logger:          params.Logger,
	}
}

// DeliverReminder pushes one reminder to every active device of the list owner.
// Malformed events are rejected with a validation error; storage failures are
// returned so the caller can retry. Per-token send failures are logged, not returned.
func (s *reminderDeliveryService) DeliverReminder(ctx context.Context, event *service.ReminderEvent) (*usecase.ReminderDeliveryResult, error) {
	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid owner id")
	}
	itemID, err := uuid.Parse(event.ItemID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid item id")
	}
	kind := entity.ReminderKind(event.Kind)
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid reminder kind")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("item_id", event.ItemID),
		slog.String("kind", event.Kind),
	)
	result := &usecase.ReminderDeliveryResult{}

	devices, err := s.deviceRepo.ListByUser(ctx, ownerID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}
	if len(devices) == 0 {
		logger.Info("[Worker] No devices to notify", slog.String("owner_id", event.OwnerID))

		return result, nil
	}
	if s.notificationSvc == nil {
		logger.Warn("[Worker] Push notifications are not configured, skipping reminder")

		return result, nil
	}

	byToken := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		byToken[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	push := reminderPush(event)
	sentAt := s.clock.Now()
	logs := make([]*entity.ReminderLog, 0, len(tokens))
	var rejected []string

	for batch := range slices.Chunk(tokens, constants.MaxFCMBatchSize) {
		outcomes, sendErr := s.notificationSvc.Multicast(ctx, batch, push)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			for _, token := range batch {
				outcomes = append(outcomes, service.PushOutcome{Token: token, Err: sendErr})
			}
		}

		for _, outcome := range outcomes {
			entry := &entity.ReminderLog{
				ID:     uuid.New(),
				ItemID: itemID,
				UserID: ownerID,
				Kind:   kind,
				Status: entity.ReminderStatusSent,
				SentAt: sentAt,
			}
			if device, ok := byToken[outcome.Token]; ok {
				entry.DeviceID = device.ID
			}

			switch {
			case outcome.Err == nil:
				entry.FCMMessageID = outcome.MessageID
				result.Sent++
			case outcome.Rejected:
				entry.Status = entity.ReminderStatusFailed
				entry.ErrorMessage = "invalid or unregistered token"
				rejected = append(rejected, outcome.Token)
				result.Failed++
			default:
				entry.Status = entity.ReminderStatusFailed
				entry.ErrorMessage = fmt.Sprintf("send error: %v", outcome.Err)
				result.Failed++
			}
			logs = append(logs, entry)
		}
	}

	result.InvalidTokens = len(rejected)
	if len(rejected) > 0 {
		deactivated, err := s.deviceRepo.DeactivateTokens(ctx, rejected)
		if err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid devices", slog.Any("error", err))
		} else {
			logger.Info("[Worker] Deactivated devices with rejected tokens", slog.Int64("count", deactivated))
		}
	}

	if err := s.reminderLogRepo.BatchCreate(ctx, logs); err != nil {
		logger.Error("[Worker] Failed to create reminder logs", slog.Any("error", err))
	}

	logger.Info("[Worker] Reminder sending completed",
		slog.Int("total_sent", result.Sent),
		slog.Int("total_failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return result, nil
}

// reminderPush renders the notification for event. Pushes collapse per item
// so an expired reminder replaces an unread expiring one.
func reminderPush(event *service.ReminderEvent) *service.Push {
	push := &service.Push{
		Title: constants.ReminderTitleExpiring,
		Body:  fmt.Sprintf("「%s」將於 %s 過期", event.ProductName, event.ExpirationDate),
		Data: map[string]string{
			"type":            "expiration_reminder",
			"kind":            event.Kind,
			"item_id":         event.ItemID,
			"list_id":         event.ListID,
			"expiration_date": event.ExpirationDate,
		},
		CollapseKey: "item-" + event.ItemID,
	}
	if entity.ReminderKind(event.Kind) == entity.ReminderExpired {
		push.Title = constants.ReminderTitleExpired
		push.Body = fmt.Sprintf("「%s」已於 %s 過期", event.ProductName, event.ExpirationDate)
	}

	return push
}
