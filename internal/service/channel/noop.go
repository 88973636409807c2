package channel

import (
	"context"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
)

// NoopChannel 还没有接入供应商的渠道，比如短信和推送
type NoopChannel struct {
	channel domain.Channel
	logger  *elog.Component
}

func NewNoopChannel(c domain.Channel) *NoopChannel {
	return &NoopChannel{
		channel: c,
		logger:  elog.DefaultLogger,
	}
}

func (c *NoopChannel) Send(_ context.Context, n domain.Notification, _ template.Payload) error {
	c.logger.Info("渠道尚未实现，跳过",
		elog.String("channel", c.channel.String()),
		elog.Any("notificationID", n.ID))
	return nil
}
