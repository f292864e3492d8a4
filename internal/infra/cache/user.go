package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"expense-matching/internal/pkg/errs"
	"expense-matching/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const usersKey = "users:all"

// UserCache stores the full user list under a single key.
type UserCache struct {
	cache *Cache
	ttl   time.Duration
}

func NewUserCache(c *Cache, ttl time.Duration) *UserCache {
	return &UserCache{cache: c, ttl: ttl}
}

func (u *UserCache) GetUsers(ctx context.Context) ([]*queries.UserView, error) {
	data, err := u.cache.client.Get(ctx, usersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, queries.ErrCacheMiss
		}
		return nil, errs.Wrap(err, "get users")
	}

	var users []*queries.UserView
	if err := json.Unmarshal(data, &users); err != nil {
		// Corrupted entry - treat as miss
		return nil, queries.ErrCacheMiss
	}
	return users, nil
}

func (u *UserCache) SetUsers(ctx context.Context, users []*queries.UserView) error {
	data, err := json.Marshal(users)
	if err != nil {
		return errs.Wrap(err, "marshal users")
	}
	return errs.Wrap(u.cache.client.Set(ctx, usersKey, data, u.ttl).Err(), "set users")
}

// NoopUserCache always misses. Used when REDIS_URL is empty.
type NoopUserCache struct{}

func NewNoopUserCache() *NoopUserCache {
	return &NoopUserCache{}
}

func (NoopUserCache) GetUsers(context.Context) ([]*queries.UserView, error) {
	return nil, queries.ErrCacheMiss
}

func (NoopUserCache) SetUsers(context.Context, []*queries.UserView) error {
	return nil
}
