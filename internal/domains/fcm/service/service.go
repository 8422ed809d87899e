package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"okshouse/infras/fcm"
	"okshouse/infras/otel"
	"okshouse/internal/domains/fcm/model/dto"
	"okshouse/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// tokenSetKey is the Redis set holding every registered admin device
// token. Tokens survive restarts, unlike admin sessions.
const tokenSetKey = "fcm:tokens"

type FCM interface {
	RegisterToken(ctx context.Context, req dto.RegisterTokenRequest) error
	UnregisterToken(ctx context.Context, req dto.UnregisterTokenRequest) error
	NotifyAdmins(ctx context.Context, title, body string, data map[string]string) (dto.NotificationResultResponse, error)
	SendTest(ctx context.Context, req dto.TestNotificationRequest) (dto.NotificationResultResponse, error)
}

type serviceImpl struct {
	redis  *goRedis.Client
	sender fcm.Sender
	otel   otel.Otel
}

func New(redis *goRedis.Client, sender fcm.Sender, otel otel.Otel) FCM {
	return &serviceImpl{
		redis:  redis,
		sender: sender,
		otel:   otel,
	}
}

func (s *serviceImpl) RegisterToken(ctx context.Context, req dto.RegisterTokenRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.redis.SAdd(ctx, tokenSetKey, req.Token).Err(); err != nil {
		log.Error().Err(err).Msg("failed to register fcm token")

		return fmt.Errorf("failed to register fcm token: %w", err)
	}

	return nil
}

func (s *serviceImpl) UnregisterToken(ctx context.Context, req dto.UnregisterTokenRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnregisterToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.redis.SRem(ctx, tokenSetKey, req.Token).Err(); err != nil {
		log.Error().Err(err).Msg("failed to unregister fcm token")

		return fmt.Errorf("failed to unregister fcm token: %w", err)
	}

	return nil
}

// NotifyAdmins pushes a notification to every registered device token.
// Delivery failures are counted, not treated as an error.
func (s *serviceImpl) NotifyAdmins(ctx context.Context, title, body string, data map[string]string) (res dto.NotificationResultResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyAdmins")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokens, err := s.redis.SMembers(ctx, tokenSetKey).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to load fcm tokens")

		return res, fmt.Errorf("failed to load fcm tokens: %w", err)
	}

	res.Tokens = len(tokens)

	if len(tokens) == 0 {
		return res, nil
	}

	sent, failed, err := s.sender.Send(ctx, tokens, title, body, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to send push notification")

		return res, fmt.Errorf("failed to send push notification: %w", err)
	}

	res.Sent = sent
	res.Failed = failed

	log.Info().
		Int("tokens", res.Tokens).
		Int("sent", sent).
		Int("failed", failed).
		Str("title", title).
		Msg("push notification dispatched")

	return res, nil
}

func (s *serviceImpl) SendTest(ctx context.Context, req dto.TestNotificationRequest) (dto.NotificationResultResponse, error) {
	title := req.Title
	if title == "" {
		title = "Test notification"
	}

	body := req.Body
	if body == "" {
		body = "Push delivery is working"
	}

	return s.NotifyAdmins(ctx, title, body, map[string]string{"type": "test"})
}
