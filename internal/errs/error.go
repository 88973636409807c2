package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter         = errors.New("参数错误")
	ErrSendNotificationFailed   = errors.New("发送通知失败")
	ErrNotificationNotFound     = errors.New("通知记录不存在")
	ErrCreateNotificationFailed = errors.New("创建通知失败")
	ErrNotificationDuplicate    = errors.New("通知记录主键冲突")

	ErrInvalidEmailConfig = errors.New("邮件配置错误")
	ErrSendEmailFailed    = errors.New("无法发送邮件")

	ErrUserNotFound = errors.New("用户不存在")

	ErrChannelNotSupported = errors.New("不支持的渠道")
	ErrPermissionDenied    = errors.New("无权操作")
)
