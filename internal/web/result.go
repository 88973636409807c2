package web

import (
	"errors"
	"net/http"

	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"github.com/gin-gonic/gin"
)

// 业务错误码，0 表示成功
const (
	CodeOK            = 0
	CodeInvalidParam  = 400001
	CodeUnauthorized  = 401001
	CodeForbidden     = 403001
	CodeNotFound      = 404001
	CodeChannelFailed = 502001
	CodeInternal      = 500001
)

// Result 统一的响应结构
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func ok(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, Result{Code: CodeOK, Msg: "OK", Data: data})
}

func fail(ctx *gin.Context, status, code int, msg string) {
	ctx.AbortWithStatusJSON(status, Result{Code: code, Msg: msg})
}

// failWithErr 按错误类型决定状态码，内部错误不把原因暴露给调用方
func failWithErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		fail(ctx, http.StatusBadRequest, CodeInvalidParam, err.Error())
	case errors.Is(err, errs.ErrPermissionDenied):
		fail(ctx, http.StatusForbidden, CodeForbidden, errs.ErrPermissionDenied.Error())
	case errors.Is(err, errs.ErrNotificationNotFound):
		fail(ctx, http.StatusNotFound, CodeNotFound, errs.ErrNotificationNotFound.Error())
	default:
		fail(ctx, http.StatusInternalServerError, CodeInternal, "系统错误")
	}
}
