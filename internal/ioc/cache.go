package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/cache"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/cache/local"
	redisCache "gitee.com/flycash/bazaarfly-notification/internal/repository/cache/redis"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

func InitGoCache() *ca.Cache {
	const cleanupInterval = 10 * time.Minute
	return ca.New(cache.DefaultExpiredTime, cleanupInterval)
}

// InitLocalUserCache redis 里的用户缓存变化时同步删除本地缓存
func InitLocalUserCache(c *ca.Cache, rdb *redis.Client) repository.LocalUserCache {
	lc := local.NewUserCache(c)
	go lc.Watch(context.Background(), rdb)
	return lc
}

func InitRedisUserCache(rdb *redis.Client) cache.UserCache {
	return redisCache.NewUserCache(rdb)
}
