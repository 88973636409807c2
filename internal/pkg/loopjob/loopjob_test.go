package loopjob

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/meoying/dlock-go"
	"github.com/stretchr/testify/assert"
)

type fakeLock struct {
	lockErr    error
	refreshErr error
	unlocked   atomic.Int32
}

func (f *fakeLock) Lock(context.Context) error    { return f.lockErr }
func (f *fakeLock) Refresh(context.Context) error { return f.refreshErr }
func (f *fakeLock) Unlock(context.Context) error {
	f.unlocked.Add(1)
	return nil
}

type fakeClient struct {
	mu    sync.Mutex
	locks []*fakeLock
	idx   int
}

func (f *fakeClient) NewLock(context.Context, string, time.Duration) (dlock.Lock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := f.locks[f.idx]
	if f.idx < len(f.locks)-1 {
		f.idx++
	}
	return l, nil
}

func TestInfiniteLoop_RunUntilCancelled(t *testing.T) {
	t.Parallel()
	lock := &fakeLock{}
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	l := NewInfiniteLoop(&fakeClient{locks: []*fakeLock{lock}}, func(context.Context) error {
		if calls.Add(1) == 3 {
			cancel()
		}
		return nil
	}, "test", WithRetryInterval(time.Millisecond))

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("任务没有退出")
	}
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, int32(1), lock.unlocked.Load())
}

func TestInfiniteLoop_RetryAfterLockFailure(t *testing.T) {
	t.Parallel()
	busy := &fakeLock{lockErr: errors.New("locked by others")}
	lost := &fakeLock{refreshErr: errors.New("lock expired")}
	ok := &fakeLock{}
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	l := NewInfiniteLoop(&fakeClient{locks: []*fakeLock{busy, lost, ok}}, func(context.Context) error {
		// 第一次在 lost 上执行，续约失败后换到 ok
		if calls.Add(1) == 2 {
			cancel()
		}
		return errors.New("业务失败也不退出")
	}, "test", WithRetryInterval(time.Millisecond), WithLockTTL(time.Second))

	l.Run(ctx)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int32(0), busy.unlocked.Load())
	assert.Equal(t, int32(1), lost.unlocked.Load())
	assert.Equal(t, int32(1), ok.unlocked.Load())
}

func TestSleep(t *testing.T) {
	t.Parallel()
	assert.True(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, Sleep(ctx, time.Hour))
}
