package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ecocart/config"
	deliverycontext "ecocart/internal/delivery/context"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/service"
	"ecocart/internal/infra/pubsub"
	"ecocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler receives reminder events pushed by Pub/Sub
type PushHandler struct {
	verify     func(*http.Request) error
	logger     *slog.Logger
	deliveryUC usecase.ReminderDeliveryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DeliveryUC usecase.ReminderDeliveryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:     params.Logger,
		deliveryUC: params.DeliveryUC,
	}

	if params.Config.Worker != nil && params.Config.Worker.VerifyToken {
		audience := params.Config.Worker.Audience
		h.verify = func(req *http.Request) error {
			return verifyPubSubToken(req, audience)
		}
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed or permanently failing events are acknowledged so Pub/Sub stops redelivering them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to parse reminder event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.Scope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing reminder event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("item_id", event.ItemID),
		slog.String("kind", event.Kind),
	)

	result, err := h.deliveryUC.DeliverReminder(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to deliver reminder",
			slog.String("item_id", event.ItemID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Reminder delivered",
		slog.String("item_id", event.ItemID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return c.NoContent(http.StatusOK)
}

// isRetryable treats client-side domain errors as permanent and everything else as transient.
func isRetryable(err error) bool {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID prefers message attributes, then the payload, then the inbound request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.ReminderEvent) string {
	candidates := []string{
		pushMsg.Message.Attributes[pubsub.AttrRequestID],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	}
	for _, requestID := range candidates {
		if deliverycontext.ValidRequestID(requestID) {
			return requestID
		}
	}

	return deliverycontext.NewRequestID()
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push requests.
// An empty audience defaults to the URL of the push endpoint.
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
