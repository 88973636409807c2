package inapp

import (
	"context"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const (
	// EventName 站内信实时推送的 topic，由网关订阅后推给在线用户
	EventName = "notification_created_events"
)

// NotificationCreatedEvent 新的站内通知已经落库
type NotificationCreatedEvent struct {
	EventID        string    `json:"eventId"`
	NotificationID uint64    `json:"notificationId"`
	Recipient      string    `json:"recipient"` // 空字符串表示广播
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	ClickURL       string    `json:"clickUrl,omitempty"`
	Ctime          time.Time `json:"ctime"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/notification_created_event_producer.mock.go -typed NotificationCreatedEventProducer
type NotificationCreatedEventProducer interface {
	Produce(ctx context.Context, evt NotificationCreatedEvent) error
}

func NewNotificationCreatedEventProducer(q mq.MQ) (NotificationCreatedEventProducer, error) {
	return mqx.NewGeneralProducer[NotificationCreatedEvent](q, EventName)
}
