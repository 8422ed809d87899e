package fcm

import (
	"context"
	"fmt"

	"okshouse/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Sender pushes a notification to a set of device tokens and reports
// how many deliveries succeeded and failed.
type Sender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (sent, failed int, err error)
}

type sender struct {
	client *messaging.Client
}

type noopSender struct{}

// New builds the push sender. When FCM is disabled or no credentials
// file is configured, a no-op sender is returned so the rest of the
// service keeps working without Firebase.
func New(cfg *config.Config) Sender {
	if !cfg.FCM.Enable || cfg.FCM.CredentialsFile == "" {
		log.Warn().Msg("FCM disabled, push notifications will be dropped")

		return &noopSender{}
	}

	ctx := context.Background()

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.FCM.ProjectID},
		option.WithCredentialsFile(cfg.FCM.CredentialsFile),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase messaging client")
	}

	log.Info().Str("projectID", cfg.FCM.ProjectID).Msg("Connected to Firebase Cloud Messaging")

	return &sender{client: client}
}

func (s *sender) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (sent, failed int, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, len(tokens), fmt.Errorf("failed to send multicast message: %w", err)
	}

	for i, result := range response.Responses {
		if result.Error != nil {
			log.Error().Err(result.Error).Str("token", tokens[i]).Msg("Failed to deliver push notification")
		}
	}

	return response.SuccessCount, response.FailureCount, nil
}

func (n *noopSender) Send(_ context.Context, tokens []string, title, _ string, _ map[string]string) (sent, failed int, err error) {
	log.Info().Int("tokens", len(tokens)).Str("title", title).Msg("FCM disabled, dropping push notification")

	return 0, len(tokens), nil
}
