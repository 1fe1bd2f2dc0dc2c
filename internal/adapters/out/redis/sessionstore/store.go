// Package sessionstore resolves session tokens against Redis. The auth
// service writes sessions as JSON blobs under a token-derived key with a
// TTL; this adapter only reads them, implementing the IdentityProvider
// port for the HTTP layer.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// sessionData is the stored shape of a session.
type sessionData struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// RedisSessionStore implements IdentityProvider backed by Redis.
type RedisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore connects to Redis and verifies the connection.
func NewRedisSessionStore(redisURL string) (*RedisSessionStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSessionStore{rdb: rdb}, nil
}

// NewRedisSessionStoreWithClient wraps an existing client, used by tests.
func NewRedisSessionStoreWithClient(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

// Resolve looks the token up and rebuilds the caller identity. Unknown and
// expired tokens are indistinguishable in Redis; both come back as
// NotAuthorizedError.
func (s *RedisSessionStore) Resolve(ctx context.Context, token string) (kernel.Actor, error) {
	if token == "" {
		return kernel.Actor{}, errs.NewNotAuthorizedError("session", "anonymous")
	}

	val, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return kernel.Actor{}, errs.NewNotAuthorizedError("session", "anonymous")
		}
		return kernel.Actor{}, fmt.Errorf("failed to get session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return kernel.Actor{}, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	userID, err := kernel.UUIDFromString(data.UserID)
	if err != nil {
		return kernel.Actor{}, errs.NewNotAuthorizedErrorWithCause("session", data.UserID, err)
	}
	role, err := kernel.RoleFromString(data.Role)
	if err != nil {
		return kernel.Actor{}, errs.NewNotAuthorizedErrorWithCause("session", data.UserID, err)
	}

	return kernel.NewActor(userID, role)
}

// Close releases the Redis connection.
func (s *RedisSessionStore) Close() error {
	return s.rdb.Close()
}
