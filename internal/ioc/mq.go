package ioc

import (
	"context"
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/event/inapp"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
)

// InitMQ 站内信实时事件只在进程内流转，用内存实现
func InitMQ() mq.MQ {
	q := memory.NewMQ()
	const partitions = 1
	if err := q.CreateTopic(context.Background(), inapp.EventName, partitions); err != nil {
		panic(err)
	}
	return q
}

func InitInAppProducer(q mq.MQ) inapp.NotificationCreatedEventProducer {
	p, err := inapp.NewNotificationCreatedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

// newKafkaConsumer 每个 topic 一个消费者，手动提交
func newKafkaConsumer() *kafka.Consumer {
	type Config struct {
		Addr    string
		GroupID string
	}
	var cfg Config
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Addr,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		panic(fmt.Sprintf("创建消费者失败: %v", err))
	}
	return consumer
}
