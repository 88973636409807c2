package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/event/notification"
	"gitee.com/flycash/bazaarfly-notification/internal/event/user"
	"gitee.com/flycash/bazaarfly-notification/internal/pkg/idempotent"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	notificationsvc "gitee.com/flycash/bazaarfly-notification/internal/service/notification"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
)

// Task 随应用启动的后台任务，ctx 取消时退出
type Task interface {
	Start(ctx context.Context)
}

// Stopper 退出时需要释放资源的任务
type Stopper interface {
	Stop(ctx context.Context) error
}

func InitExpiredCleanupTask(dclient dlock.Client, repo repository.NotificationRepository) *notificationsvc.ExpiredCleanupTask {
	type Config struct {
		BatchSize int
		Idle      string
	}
	var cfg Config
	if err := econf.UnmarshalKey("cleanup", &cfg); err != nil {
		panic(err)
	}
	var idle time.Duration
	if cfg.Idle != "" {
		d, err := time.ParseDuration(cfg.Idle)
		if err != nil {
			panic(err)
		}
		idle = d
	}
	return notificationsvc.NewExpiredCleanupTask(dclient, repo, cfg.BatchSize, idle)
}

func InitEventConsumer(srv notificationsvc.SendService, idem idempotent.Service) *notification.EventConsumer {
	c, err := notification.NewEventConsumer(srv, newKafkaConsumer(), idem)
	if err != nil {
		panic(err)
	}
	return c
}

func InitUserEventConsumer(repo repository.UserRepository) *user.EventConsumer {
	c, err := user.NewEventConsumer(repo, newKafkaConsumer())
	if err != nil {
		panic(err)
	}
	return c
}

func InitTasks(t1 *notificationsvc.ExpiredCleanupTask, t2 *notification.EventConsumer, t3 *user.EventConsumer) []Task {
	return []Task{
		t1,
		t2,
		t3,
	}
}
