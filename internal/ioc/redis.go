package ioc

import (
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/pkg/idempotent"
	"gitee.com/flycash/bazaarfly-notification/internal/pkg/redis/metrics"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
	"github.com/redis/go-redis/v9"
)

func InitRedisClient() *redis.Client {
	type Config struct {
		Addr     string
		Password string
		DB       int
	}
	var cfg Config
	err := econf.UnmarshalKey("redis", &cfg)
	if err != nil {
		panic(err)
	}
	cmd := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return metrics.WithMetrics(cmd)
}

func InitDistributedLock(rdb *redis.Client) dlock.Client {
	return dlockRedis.NewClient(rdb)
}

// InitIdempotentService 领域事件的去重窗口
func InitIdempotentService(rdb *redis.Client) idempotent.Service {
	const expiration = 24 * time.Hour
	return idempotent.NewRedisService(rdb, expiration)
}
