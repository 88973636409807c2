package idempotent

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotent:"

// RedisService 用 SETNX 记录处理过的 key
type RedisService struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisService(client redis.Cmdable, expiration time.Duration) *RedisService {
	return &RedisService{
		client:     client,
		expiration: expiration,
	}
}

func (s *RedisService) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, 1, s.expiration).Result()
	if err != nil {
		return false, err
	}
	// 设置成功说明之前不存在
	return !ok, nil
}
