package loopjob

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

// 在没有分布式任务调度平台的情况下，使用这个来调度，同一时刻只有拿到锁的实例在执行

const (
	defaultTimeout       = time.Second * 3
	defaultLockTTL       = time.Minute
	defaultRetryInterval = time.Minute
)

type InfiniteLoop struct {
	dclient dlock.Client
	key     string
	logger  *elog.Component
	biz     func(ctx context.Context) error

	lockTTL       time.Duration
	retryInterval time.Duration
}

type Option func(l *InfiniteLoop)

// WithRetryInterval 没抢到锁或者续约失败之后，隔多久再抢
func WithRetryInterval(d time.Duration) Option {
	return func(l *InfiniteLoop) {
		l.retryInterval = d
	}
}

func WithLockTTL(d time.Duration) Option {
	return func(l *InfiniteLoop) {
		l.lockTTL = d
	}
}

func NewInfiniteLoop(
	dclient dlock.Client,
	// 你要执行的业务。注意当 ctx 被取消的时候，就会退出全部循环
	biz func(ctx context.Context) error,
	key string,
	opts ...Option,
) *InfiniteLoop {
	l := &InfiniteLoop{
		dclient:       dclient,
		key:           key,
		logger:        elog.DefaultLogger.With(elog.String("key", key)),
		biz:           biz,
		lockTTL:       defaultLockTTL,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run 阻塞直到 ctx 被取消
func (l *InfiniteLoop) Run(ctx context.Context) {
	for {
		err := l.runOnce(ctx)
		if ctx.Err() != nil {
			l.logger.Info("任务被取消，退出任务循环")
			return
		}
		if err != nil {
			l.logger.Warn("本轮任务结束，稍后重试", elog.FieldErr(err))
		}
		if !Sleep(ctx, l.retryInterval) {
			l.logger.Info("任务被取消，退出任务循环")
			return
		}
	}
}

// runOnce 抢锁，持有锁期间反复执行业务，直到续约失败或者 ctx 被取消
func (l *InfiniteLoop) runOnce(ctx context.Context) error {
	lock, err := l.dclient.NewLock(ctx, l.key, l.lockTTL)
	if err != nil {
		return fmt.Errorf("初始化分布式锁失败 %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	err = lock.Lock(lockCtx)
	cancel()
	if err != nil {
		// 锁被别的实例持有也会走到这里
		return fmt.Errorf("没有抢到分布式锁 %w", err)
	}

	err = l.bizLoop(ctx, lock)

	// ctx 可能已经被取消了，但还是要释放锁
	unCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	//nolint:contextcheck // 原始 ctx 可能已被取消
	unErr := lock.Unlock(unCtx)
	cancel()
	if unErr != nil {
		l.logger.Error("释放分布式锁失败", elog.FieldErr(unErr))
	}
	return err
}

func (l *InfiniteLoop) bizLoop(ctx context.Context, lock dlock.Lock) error {
	for {
		err := l.biz(ctx)
		if err != nil {
			l.logger.Error("业务执行失败", elog.FieldErr(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		refCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		err = lock.Refresh(refCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("分布式锁续约失败 %w", err)
		}
	}
}

// Sleep 返回 false 表示 ctx 在睡眠期间被取消
func Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
