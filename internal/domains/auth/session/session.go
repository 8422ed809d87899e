package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=../mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"okshouse/shared/cache"
)

const keyPrefix = "session:admin:"

// Store tracks which admins currently hold a usable session. Tokens
// stay stateless, this is the server-side revocation set layered on
// top of them. Entries expire together with the refresh token.
type Store interface {
	Activate(ctx context.Context, adminID string, ttlSeconds int) error
	IsActive(ctx context.Context, adminID string) (bool, error)
	Deactivate(ctx context.Context, adminID string) error
}

type redisStore struct {
	cache cache.RedisCache
}

func NewStore(cache cache.RedisCache) Store {
	return &redisStore{cache: cache}
}

func key(adminID string) string {
	return keyPrefix + adminID
}

func (s *redisStore) Activate(ctx context.Context, adminID string, ttlSeconds int) error {
	if err := s.cache.Save(ctx, key(adminID), "1", ttlSeconds); err != nil {
		return fmt.Errorf("failed to activate session: %w", err)
	}

	return nil
}

func (s *redisStore) IsActive(ctx context.Context, adminID string) (bool, error) {
	var value string

	err := s.cache.Get(ctx, key(adminID), &value)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check session: %w", err)
	}

	return true, nil
}

func (s *redisStore) Deactivate(ctx context.Context, adminID string) error {
	if err := s.cache.Delete(ctx, key(adminID)); err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}

	return nil
}
