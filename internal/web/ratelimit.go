package web

import (
	"net/http"

	"gitee.com/flycash/bazaarfly-notification/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const CodeTooManyRequests = 429001

// RateLimitBuilder 按登录用户限流，必须放在登录校验之后
type RateLimitBuilder struct {
	limiter ratelimit.Limiter
	prefix  string
	logger  *elog.Component
}

func NewRateLimitBuilder(limiter ratelimit.Limiter, prefix string) *RateLimitBuilder {
	return &RateLimitBuilder{limiter: limiter, prefix: prefix, logger: elog.DefaultLogger}
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limited, err := b.limiter.Limit(ctx.Request.Context(), b.prefix+":"+ctx.GetString(ctxKeyUID))
		if err != nil {
			// redis 出问题时放行
			b.logger.Error("限流器出错", elog.FieldErr(err))
			ctx.Next()
			return
		}
		if limited {
			fail(ctx, http.StatusTooManyRequests, CodeTooManyRequests, "请求过于频繁")
			return
		}
		ctx.Next()
	}
}
