package web

import (
	"errors"
	"net/http"
	"strconv"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/pkg/ratelimit"
	notificationsvc "gitee.com/flycash/bazaarfly-notification/internal/service/notification"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc     notificationsvc.Service
	sendSvc notificationsvc.SendService
	limiter ratelimit.Limiter
	logger  *elog.Component
}

// NewHandler limiter 限制管理员手动发送的频率
func NewHandler(svc notificationsvc.Service, sendSvc notificationsvc.SendService, limiter ratelimit.Limiter) *Handler {
	return &Handler{
		svc:     svc,
		sendSvc: sendSvc,
		limiter: limiter,
		logger:  elog.DefaultLogger,
	}
}

// PrivateRoutes 需要登录的路由，login 是登录校验的中间件
func (h *Handler) PrivateRoutes(server *gin.Engine, login gin.HandlerFunc) {
	ng := server.Group("/notifications", login)
	ng.GET("", h.List)
	ng.GET("/unread/count", h.CountUnread)
	ng.POST("/:id/read", h.MarkAsRead)

	ag := server.Group("/admin/notifications", login, AdminOnly())
	ag.POST("", NewRateLimitBuilder(h.limiter, "admin_send").Build(), h.Send)
	ag.GET("", h.ListByType)
}

func (h *Handler) List(ctx *gin.Context) {
	offset, limit := pageQuery(ctx)
	unread, _ := strconv.ParseBool(ctx.Query("unread"))
	ns, err := h.svc.ListByRecipient(ctx.Request.Context(), ctx.GetString(ctxKeyUID), unread, offset, limit)
	if err != nil {
		h.logger.Error("查询通知列表失败", elog.FieldErr(err))
		failWithErr(ctx, err)
		return
	}
	ok(ctx, ListResp{Notifications: newNotifications(ns)})
}

func (h *Handler) CountUnread(ctx *gin.Context) {
	cnt, err := h.svc.CountUnread(ctx.Request.Context(), ctx.GetString(ctxKeyUID))
	if err != nil {
		h.logger.Error("查询未读数失败", elog.FieldErr(err))
		failWithErr(ctx, err)
		return
	}
	ok(ctx, CountResp{Count: cnt})
}

func (h *Handler) MarkAsRead(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		fail(ctx, http.StatusBadRequest, CodeInvalidParam, "id 不合法")
		return
	}
	n, err := h.svc.MarkAsRead(ctx.Request.Context(), id, ctx.GetString(ctxKeyUID))
	if err != nil {
		failWithErr(ctx, err)
		return
	}
	ok(ctx, newNotification(n))
}

func (h *Handler) Send(ctx *gin.Context) {
	var req SendReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, http.StatusBadRequest, CodeInvalidParam, "请求格式错误")
		return
	}
	n, err := h.sendSvc.SendNotification(ctx.Request.Context(), req.toDomain())
	switch {
	case err == nil:
		ok(ctx, newNotification(n))
	case errors.Is(err, errs.ErrSendNotificationFailed):
		// 记录已经保存，只是部分渠道没有发出去
		ctx.JSON(http.StatusOK, Result{Code: CodeChannelFailed, Msg: err.Error(), Data: newNotification(n)})
	default:
		h.logger.Error("发送通知失败", elog.FieldErr(err))
		failWithErr(ctx, err)
	}
}

func (h *Handler) ListByType(ctx *gin.Context) {
	offset, limit := pageQuery(ctx)
	ns, err := h.svc.ListByType(ctx.Request.Context(), domain.NotificationType(ctx.Query("type")), offset, limit)
	if err != nil {
		failWithErr(ctx, err)
		return
	}
	ok(ctx, ListResp{Notifications: newNotifications(ns)})
}

// pageQuery 非法的值交给服务层兜底
func pageQuery(ctx *gin.Context) (int, int) {
	offset, _ := strconv.Atoi(ctx.Query("offset"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	return offset, limit
}
