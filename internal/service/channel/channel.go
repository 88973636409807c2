package channel

import (
	"context"
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/service/template"
)

// Channel 渠道接口，通知记录已经落库之后才会调用
//
//go:generate mockgen -source=./channel.go -destination=./mocks/channel.mock.go -package=channelmocks -typed Channel
type Channel interface {
	// Send 发送通知，payload 是调用方传过来的模板参数
	Send(ctx context.Context, n domain.Notification, payload template.Payload) error
}

// Dispatcher 渠道分发器，按渠道名找到具体实现
type Dispatcher struct {
	channels map[domain.Channel]Channel
}

// NewDispatcher 创建渠道分发器
func NewDispatcher(channels map[domain.Channel]Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
	}
}

func (d *Dispatcher) Send(ctx context.Context, c domain.Channel, n domain.Notification, payload template.Payload) error {
	ch, ok := d.channels[c]
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, c)
	}
	return ch.Send(ctx, n, payload)
}
