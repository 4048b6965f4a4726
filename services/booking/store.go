package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"consultly/config"
	"consultly/models"
	"consultly/utils"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a workflow session does not exist or
// its TTL expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// SessionStore persists in-flight workflow sessions.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore builds the production session store backed by the
// dedicated session Redis DB. Each save refreshes the TTL, so an active
// workflow stays alive while an abandoned one expires on its own.
func NewRedisSessionStore() SessionStore {
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &redisSessionStore{
		client: utils.GetSessionCacheClient(),
		ttl:    ttl,
	}
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, utils.SessionKeyPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, utils.SessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
