package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore tracks live session token IDs in Redis. A token is only
// honoured while its ID is present, which is what makes logout stick even
// though the JWT itself stays syntactically valid until expiry.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, tokenID, userID string) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+tokenID, userID, s.ttl).Err()
}

func (s *SessionStore) Valid(ctx context.Context, tokenID string) (bool, error) {
	_, err := s.rdb.Get(ctx, sessionKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SessionStore) Revoke(ctx context.Context, tokenID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+tokenID).Err()
}
