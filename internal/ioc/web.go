package ioc

import (
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/pkg/jwtx"
	"gitee.com/flycash/bazaarfly-notification/internal/pkg/ratelimit"
	"gitee.com/flycash/bazaarfly-notification/internal/web"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
)

func InitJWTAuth() *jwtx.Auth {
	key := econf.GetString("jwt.key")
	if key == "" {
		panic("jwt.key 不能为空")
	}
	return jwtx.NewAuth(key)
}

func InitWeb(handler *web.Handler, auth *jwtx.Auth) *egin.Component {
	server := egin.Load("server.http").Build()
	handler.PrivateRoutes(server.Engine, web.NewLoginMiddlewareBuilder(auth).Build())
	return server
}

// InitAdminSendLimiter 默认每个管理员每分钟 60 次
func InitAdminSendLimiter(rdb *redis.Client) ratelimit.Limiter {
	type Config struct {
		Interval string
		Rate     int
	}
	cfg := Config{Interval: "1m", Rate: 60}
	if err := econf.UnmarshalKey("ratelimit.adminSend", &cfg); err != nil {
		panic(err)
	}
	interval, err := time.ParseDuration(cfg.Interval)
	if err != nil {
		panic(err)
	}
	return ratelimit.NewRedisSlidingWindowLimiter(rdb, interval, cfg.Rate)
}
