package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps client-supplied Idempotency-Key headers to the
// session they produced, so a retried request replays the original result
// instead of logging the same hours twice.
// Key format: idem:work:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the session id previously recorded for key, or "" when the
// key has not been seen.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return val, nil
}

// Mark records the session produced under key (expires after idempotencyTTL).
func (s *IdempotencyStore) Mark(ctx context.Context, key, sessionID string) error {
	return s.client.Set(ctx, s.key(key), sessionID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return fmt.Sprintf("idem:work:%s", key)
}
