package notification

import (
	"context"

	"ecocart/config"
	"ecocart/internal/domain/constants"
	"ecocart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates the FCM client used to push expiration reminders.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return nil, errors.New("firebase credentials path must be provided")
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) Multicast(ctx context.Context, tokens []string, push *service.Push) ([]service.PushOutcome, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > constants.MaxFCMBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), constants.MaxFCMBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, newMulticast(tokens, push))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	return toOutcomes(tokens, response.Responses), nil
}

// toOutcomes pairs FCM responses with the tokens they were sent to.
// Invalid-argument and unregistered errors mean the token is dead.
func toOutcomes(tokens []string, responses []*messaging.SendResponse) []service.PushOutcome {
	outcomes := make([]service.PushOutcome, len(tokens))
	for idx, token := range tokens {
		outcomes[idx].Token = token
		if idx >= len(responses) || responses[idx] == nil {
			outcomes[idx].Err = errors.New("no response from FCM")

			continue
		}

		resp := responses[idx]
		if resp.Success {
			outcomes[idx].MessageID = resp.MessageID

			continue
		}
		outcomes[idx].Err = resp.Error
		outcomes[idx].Rejected = messaging.IsInvalidArgument(resp.Error) || messaging.IsUnregistered(resp.Error)
	}

	return outcomes
}

// newMulticast builds the platform blocks so a newer reminder for the same
// item replaces an undelivered one on Android, iOS and web alike.
func newMulticast(tokens []string, push *service.Push) *messaging.MulticastMessage {
	msg := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: push.Title, Body: push.Body},
		Data:         push.Data,
		Android:      &messaging.AndroidConfig{Priority: "high"},
	}

	if push.CollapseKey != "" {
		msg.Android.CollapseKey = push.CollapseKey
		msg.APNS = &messaging.APNSConfig{Headers: map[string]string{"apns-collapse-id": push.CollapseKey}}
		msg.Webpush = &messaging.WebpushConfig{Headers: map[string]string{"Topic": push.CollapseKey}}
	}

	return msg
}
