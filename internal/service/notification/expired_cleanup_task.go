package notification

import (
	"context"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/pkg/loopjob"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	"github.com/meoying/dlock-go"
)

const (
	defaultCleanupBatchSize = 100
	defaultCleanupIdle      = time.Minute
	// lockTTLMargin 留给一次删除的时间，锁的过期时间必须覆盖休息加删除
	lockTTLMargin = 30 * time.Second
)

// ExpiredCleanupTask 定期删除过期的通知，多个实例之间用分布式锁保证只有一个在删
type ExpiredCleanupTask struct {
	dclient   dlock.Client
	repo      repository.NotificationRepository
	batchSize int
	idle      time.Duration
}

func NewExpiredCleanupTask(dclient dlock.Client, repo repository.NotificationRepository, batchSize int, idle time.Duration) *ExpiredCleanupTask {
	if batchSize <= 0 {
		batchSize = defaultCleanupBatchSize
	}
	if idle <= 0 {
		idle = defaultCleanupIdle
	}
	return &ExpiredCleanupTask{dclient: dclient, repo: repo, batchSize: batchSize, idle: idle}
}

func (t *ExpiredCleanupTask) Start(ctx context.Context) {
	const key = "notification_expired_cleanup"
	lj := loopjob.NewInfiniteLoop(t.dclient, t.DeleteExpired, key,
		loopjob.WithLockTTL(t.lockTTL()))
	lj.Run(ctx)
}

func (t *ExpiredCleanupTask) lockTTL() time.Duration {
	return t.idle + lockTTLMargin
}

func (t *ExpiredCleanupTask) DeleteExpired(ctx context.Context) error {
	cnt, err := t.repo.DeleteExpired(ctx, time.Now(), t.batchSize)
	if err != nil {
		return err
	}
	// 过期的不多，可以休息一下
	if cnt < int64(t.batchSize) {
		loopjob.Sleep(ctx, t.idle)
	}
	return nil
}
