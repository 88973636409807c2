package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/pkg/idempotent"
	"gitee.com/flycash/bazaarfly-notification/internal/pkg/mqx"
	notificationsvc "gitee.com/flycash/bazaarfly-notification/internal/service/notification"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultPollTimeout = time.Second
)

// EventConsumer 消费领域事件并发送通知。
// 每条消息只尝试一次，无论成功失败都会提交。
type EventConsumer struct {
	srv         notificationsvc.SendService
	consumer    mqx.Consumer
	idempotent  idempotent.Service
	pollTimeout time.Duration
	// stopped 消费循环退出之后关闭
	stopped chan struct{}
	logger  *elog.Component
}

func NewEventConsumer(srv notificationsvc.SendService, consumer *kafka.Consumer, idem idempotent.Service) (*EventConsumer, error) {
	return NewEventConsumerWithTopic(srv, consumer, idem, EventName)
}

func NewEventConsumerWithTopic(srv notificationsvc.SendService, consumer *kafka.Consumer, idem idempotent.Service, topic string) (*EventConsumer, error) {
	err := consumer.SubscribeTopics([]string{topic}, nil)
	if err != nil {
		return nil, err
	}
	return newEventConsumer(srv, consumer, idem), nil
}

func newEventConsumer(srv notificationsvc.SendService, consumer mqx.Consumer, idem idempotent.Service) *EventConsumer {
	return &EventConsumer{
		srv:         srv,
		consumer:    consumer,
		idempotent:  idem,
		pollTimeout: defaultPollTimeout,
		stopped:     make(chan struct{}),
		logger:      elog.DefaultLogger,
	}
}

// Start 异步消费，ctx 取消后退出
func (c *EventConsumer) Start(ctx context.Context) {
	go func() {
		defer close(c.stopped)
		for ctx.Err() == nil {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("消费领域事件失败", elog.FieldErr(er))
			}
		}
	}()
}

// Stop 等消费循环退出之后关闭 kafka 消费者，调用前要先取消 Start 的 ctx
func (c *EventConsumer) Stop(ctx context.Context) error {
	select {
	case <-c.stopped:
	case <-ctx.Done():
		c.logger.Warn("等待消费循环退出超时")
	}
	return c.consumer.Close()
}

// Consume 处理一条消息，超时没有消息时返回 nil
func (c *EventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.ReadMessage(c.pollTimeout)
	if err != nil {
		var kErr kafka.Error
		if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
			return nil
		}
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt Event
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.Warn("解析消息失败，跳过",
			elog.FieldErr(err),
			elog.String("value", string(msg.Value)))
		return c.commit(msg)
	}

	if c.duplicated(ctx, evt) {
		return c.commit(msg)
	}

	n, err := c.srv.SendNotification(ctx, evt.SendRequest())
	if err != nil {
		// 不重试，记录已经落库的话用户仍然能在站内信里看到
		c.logger.Warn("处理领域事件失败",
			elog.FieldErr(err),
			elog.String("type", evt.Type),
			elog.String("recipient", evt.Recipient),
			elog.Any("notificationID", n.ID))
	}
	return c.commit(msg)
}

// duplicated 去重失败时仍然发送，宁可重复也不要丢
func (c *EventConsumer) duplicated(ctx context.Context, evt Event) bool {
	if evt.EventID == "" {
		return false
	}
	exists, err := c.idempotent.Exists(ctx, "domain_event:"+evt.EventID)
	if err != nil {
		c.logger.Warn("领域事件去重失败", elog.FieldErr(err), elog.String("eventID", evt.EventID))
		return false
	}
	if exists {
		c.logger.Info("重复的领域事件，跳过", elog.String("eventID", evt.EventID))
	}
	return exists
}

func (c *EventConsumer) commit(msg *kafka.Message) error {
	if _, err := c.consumer.CommitMessage(msg); err != nil {
		c.logger.Warn("提交消息失败",
			elog.FieldErr(err),
			elog.Any("partition", msg.TopicPartition.Partition),
			elog.Any("offset", msg.TopicPartition.Offset))
		return err
	}
	return nil
}
