package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/pkg/mqx"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"
)

const defaultPollTimeout = time.Second

// EventConsumer 把用户目录的变更同步到本地的 users 表
type EventConsumer struct {
	repo        repository.UserRepository
	consumer    mqx.Consumer
	pollTimeout time.Duration
	stopped     chan struct{}
	logger      *elog.Component
}

func NewEventConsumer(repo repository.UserRepository, consumer *kafka.Consumer) (*EventConsumer, error) {
	err := consumer.SubscribeTopics([]string{EventName}, nil)
	if err != nil {
		return nil, err
	}
	return newEventConsumer(repo, consumer), nil
}

func newEventConsumer(repo repository.UserRepository, consumer mqx.Consumer) *EventConsumer {
	return &EventConsumer{
		repo:        repo,
		consumer:    consumer,
		pollTimeout: defaultPollTimeout,
		stopped:     make(chan struct{}),
		logger:      elog.DefaultLogger,
	}
}

func (c *EventConsumer) Start(ctx context.Context) {
	go func() {
		defer close(c.stopped)
		for ctx.Err() == nil {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("消费用户事件失败", elog.FieldErr(er))
			}
		}
	}()
}

// Stop 调用前要先取消 Start 的 ctx
func (c *EventConsumer) Stop(ctx context.Context) error {
	select {
	case <-c.stopped:
	case <-ctx.Done():
		c.logger.Warn("等待消费循环退出超时")
	}
	return c.consumer.Close()
}

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
	if err = json.Unmarshal(msg.Value, &evt); err != nil || evt.ID == "" {
		c.logger.Warn("无效的用户事件，跳过",
			elog.FieldErr(err),
			elog.String("value", string(msg.Value)))
		return c.commit(msg)
	}

	if err = c.handle(ctx, evt); err != nil {
		c.logger.Error("同步用户失败",
			elog.FieldErr(err),
			elog.String("type", evt.Type),
			elog.String("id", evt.ID))
	}
	return c.commit(msg)
}

func (c *EventConsumer) handle(ctx context.Context, evt Event) error {
	switch evt.Type {
	case TypeUserUpserted:
		return c.repo.Save(ctx, evt.User())
	case TypeUserDeleted:
		return c.repo.SoftDelete(ctx, evt.ID)
	default:
		c.logger.Warn("未知的用户事件类型", elog.String("type", evt.Type))
		return nil
	}
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
