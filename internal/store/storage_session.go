package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// redisSessionStorage stores sessions as JSON under "session:<token id>"
// with a TTL equal to the remaining token lifetime.
type redisSessionStorage struct {
	rdb    *redis.Client
	logger *logger.Logger
}

func NewRedisSessionStorage(rdb *redis.Client, logger *logger.Logger) SessionStorage {
	return &redisSessionStorage{
		rdb:    rdb,
		logger: logger,
	}
}

func (s *redisSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s is already expired", session.TokenID)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = s.rdb.Set(ctx, sessionKey(session.TokenID), payload, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisSessionStorage.SaveSession").
			Str("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// IsSessionActive reports whether a session exists for tokenID and belongs
// to userID.
func (s *redisSessionStorage) IsSessionActive(ctx context.Context, tokenID, userID string) (bool, error) {
	payload, err := s.rdb.Get(ctx, sessionKey(tokenID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return false, fmt.Errorf("error decoding session: %w", err)
	}

	return session.UserID == userID, nil
}

// DeleteSession removes the session. Deleting a missing session is not an error.
func (s *redisSessionStorage) DeleteSession(ctx context.Context, tokenID string) error {
	if err := s.rdb.Del(ctx, sessionKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func sessionKey(tokenID string) string {
	return sessionKeyPrefix + tokenID
}

// noopSessionStorage is used when Redis is not configured. Tokens are then
// stateless: every validly signed, unexpired token is accepted and logout
// only discards the token on the client.
type noopSessionStorage struct{}

func NewNoopSessionStorage() SessionStorage {
	return noopSessionStorage{}
}

func (noopSessionStorage) SaveSession(context.Context, models.Session) error { return nil }

func (noopSessionStorage) IsSessionActive(context.Context, string, string) (bool, error) {
	return true, nil
}

func (noopSessionStorage) DeleteSession(context.Context, string) error { return nil }
