package channel

import (
	"context"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/event/inapp"
	"gitee.com/flycash/bazaarfly-notification/internal/service/template"
	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
)

// InAppChannel 落库的记录本身就是站内信，这里只负责通知在线用户
type InAppChannel struct {
	producer inapp.NotificationCreatedEventProducer
	logger   *elog.Component
}

func NewInAppChannel(producer inapp.NotificationCreatedEventProducer) *InAppChannel {
	return &InAppChannel{
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

// Send 推送失败只记日志，用户刷新列表时仍然能看到
func (c *InAppChannel) Send(ctx context.Context, n domain.Notification, _ template.Payload) error {
	evt := inapp.NotificationCreatedEvent{
		NotificationID: n.ID,
		Recipient:      n.Recipient,
		Type:           n.Type.String(),
		Title:          n.Title,
		Message:        n.Message,
		Ctime:          n.Ctime,
	}
	if n.ClickAction != nil {
		evt.ClickURL = n.ClickAction.URL
	}
	id, err := uuid.NewV4()
	if err == nil {
		evt.EventID = id.String()
	}
	if err = c.producer.Produce(ctx, evt); err != nil {
		c.logger.Warn("发送站内信实时事件失败",
			elog.Any("notificationID", n.ID),
			elog.FieldErr(err))
	}
	return nil
}
