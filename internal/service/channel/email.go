package channel

import (
	"context"
	"errors"
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	"gitee.com/flycash/bazaarfly-notification/internal/service/email"
	"gitee.com/flycash/bazaarfly-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
)

// EmailChannel 找到接收者的邮箱，渲染模板后发送
type EmailChannel struct {
	users   repository.UserRepository
	catalog *template.Catalog
	sender  email.Sender
	logger  *elog.Component
}

func NewEmailChannel(users repository.UserRepository, catalog *template.Catalog, sender email.Sender) *EmailChannel {
	return &EmailChannel{
		users:   users,
		catalog: catalog,
		sender:  sender,
		logger:  elog.DefaultLogger,
	}
}

// Send 用户不存在、已注销或者没有邮箱时直接跳过，不算失败
func (c *EmailChannel) Send(ctx context.Context, n domain.Notification, payload template.Payload) error {
	if n.IsBroadcast() {
		c.logger.Debug("广播通知不发邮件", elog.Any("notificationID", n.ID))
		return nil
	}

	user, err := c.users.FindActiveByID(ctx, n.Recipient)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			c.logger.Debug("接收者不存在，跳过邮件",
				elog.Any("notificationID", n.ID),
				elog.String("recipient", n.Recipient))
			return nil
		}
		return fmt.Errorf("查询接收者失败 %w", err)
	}
	if !user.HasEmail() {
		c.logger.Debug("接收者没有邮箱，跳过邮件",
			elog.Any("notificationID", n.ID),
			elog.String("recipient", n.Recipient))
		return nil
	}

	rendered, ok := c.catalog.Render(n.Type, payload.Merge(map[string]any{"name": user.Name}))
	if !ok {
		rendered = fallback(n)
	}
	return c.sender.Send(ctx, domain.Email{
		To:      user.Email,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
	})
}

// fallback 没有模板的类型直接用通知的标题和内容
func fallback(n domain.Notification) template.Rendered {
	return template.Rendered{
		Subject: n.Title,
		HTML:    "<p>" + n.Message + "</p>",
	}
}
