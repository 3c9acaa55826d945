// internal/statestore/redis.go
package statestore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore persists container snapshots in Redis with a sliding TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Load retrieves a snapshot by key. Any read failure is reported as absence.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("State load failed, treating as absent")
		return nil, false
	}
	return data, true
}

// Save writes a snapshot. Failures are logged and swallowed so the
// caller's in-memory mutation stands regardless.
func (s *RedisStore) Save(ctx context.Context, key string, data []byte) {
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("State save failed, keeping in-memory state")
	}
}

// Delete removes a snapshot. Failures are logged and swallowed.
func (s *RedisStore) Delete(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("State delete failed")
	}
}
