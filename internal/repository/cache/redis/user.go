package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type UserCache struct {
	rdb *redis.Client
}

func NewUserCache(rdb *redis.Client) *UserCache {
	return &UserCache{
		rdb: rdb,
	}
}

func (c *UserCache) Del(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, cache.UserKey(id)).Err()
}

func (c *UserCache) Get(ctx context.Context, id string) (domain.User, error) {
	val, err := c.rdb.Get(ctx, cache.UserKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.User{}, cache.ErrKeyNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user from redis %w", err)
	}

	var u domain.User
	err = json.Unmarshal(val, &u)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to unmarshal user data %w", err)
	}
	return u, nil
}

func (c *UserCache) Set(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user data %w", err)
	}

	err = c.rdb.Set(ctx, cache.UserKey(u.ID), data, cache.DefaultExpiredTime).Err()
	if err != nil {
		return fmt.Errorf("failed to set user to redis %w", err)
	}
	return nil
}
