package notification

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	repomocks "gitee.com/flycash/bazaarfly-notification/internal/repository/mocks"
	"github.com/meoying/dlock-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpiredCleanupTask_DeleteExpired(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		deleted int64
		err     error
		// 不满一批时要休息
		wantIdle bool
	}{
		{name: "满一批继续删", deleted: 10},
		{name: "不满一批休息", deleted: 3, wantIdle: true},
		{name: "删除失败", err: errors.New("mock db error")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockNotificationRepository(ctrl)
			repo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), 10).Return(tc.deleted, tc.err)

			task := NewExpiredCleanupTask(nil, repo, 10, 200*time.Millisecond)
			start := time.Now()
			err := task.DeleteExpired(context.Background())
			assert.Equal(t, tc.err, err)
			if tc.wantIdle {
				assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
			} else {
				assert.Less(t, time.Since(start), 200*time.Millisecond)
			}
		})
	}
}

func TestExpiredCleanupTask_IdleStopsOnCancel(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), 100).Return(int64(0), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	task := NewExpiredCleanupTask(nil, repo, 0, time.Hour)
	start := time.Now()
	assert.NoError(t, task.DeleteExpired(ctx))
	assert.Less(t, time.Since(start), time.Second)
}

// expiringLock 按 ttl 模拟 redis 锁过期，过期之后续约失败
type expiringLock struct {
	ttl time.Duration

	mu         sync.Mutex
	expireAt   time.Time
	refreshed  int
	refreshErr error
}

func (l *expiringLock) Lock(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.expireAt = time.Now().Add(l.ttl)
	return nil
}

func (l *expiringLock) Refresh(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if time.Now().After(l.expireAt) {
		l.refreshErr = dlock.ErrLockNotHold
		return l.refreshErr
	}
	l.refreshed++
	l.expireAt = time.Now().Add(l.ttl)
	return nil
}

func (l *expiringLock) Unlock(context.Context) error { return nil }

type expiringLockClient struct {
	mu    sync.Mutex
	locks []*expiringLock
}

func (c *expiringLockClient) NewLock(_ context.Context, _ string, ttl time.Duration) (dlock.Lock, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l := &expiringLock{ttl: ttl}
	c.locks = append(c.locks, l)
	return l, nil
}

func TestExpiredCleanupTask_LockOutlivesIdle(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const idle = 100 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	repo := repomocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(context.Context, time.Time, int) (int64, error) {
			if calls.Add(1) == 3 {
				cancel()
			}
			return 0, nil
		}).MinTimes(3)

	dclient := &expiringLockClient{}
	task := NewExpiredCleanupTask(dclient, repo, 10, idle)
	// 休息时间比锁的过期时间短，锁才能一直续上
	assert.Greater(t, task.lockTTL(), idle)

	done := make(chan struct{})
	go func() {
		task.Start(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("任务没有退出")
	}

	require.Len(t, dclient.locks, 1)
	lock := dclient.locks[0]
	assert.Equal(t, idle+lockTTLMargin, lock.ttl)
	assert.NoError(t, lock.refreshErr)
	assert.Equal(t, 2, lock.refreshed)
}
