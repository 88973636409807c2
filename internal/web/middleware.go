package web

import (
	"net/http"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/pkg/jwtx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	ctxKeyUID  = "uid"
	ctxKeyRole = "role"
)

// LoginMiddlewareBuilder 校验 Authorization 头里的令牌
type LoginMiddlewareBuilder struct {
	auth   *jwtx.Auth
	logger *elog.Component
}

func NewLoginMiddlewareBuilder(auth *jwtx.Auth) *LoginMiddlewareBuilder {
	return &LoginMiddlewareBuilder{auth: auth, logger: elog.DefaultLogger}
}

func (b *LoginMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			fail(ctx, http.StatusUnauthorized, CodeUnauthorized, "未登录")
			return
		}
		claims, err := b.auth.Decode(token)
		if err != nil {
			b.logger.Debug("令牌校验失败", elog.FieldErr(err))
			fail(ctx, http.StatusUnauthorized, CodeUnauthorized, "未登录")
			return
		}
		uid := jwtx.StringClaim(claims, jwtx.ClaimUID)
		if uid == "" {
			fail(ctx, http.StatusUnauthorized, CodeUnauthorized, "未登录")
			return
		}
		ctx.Set(ctxKeyUID, uid)
		ctx.Set(ctxKeyRole, jwtx.StringClaim(claims, jwtx.ClaimRole))
		ctx.Next()
	}
}

// AdminOnly 必须放在登录校验之后
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if domain.Role(ctx.GetString(ctxKeyRole)) != domain.RoleAdmin {
			fail(ctx, http.StatusForbidden, CodeForbidden, "需要管理员权限")
			return
		}
		ctx.Next()
	}
}
