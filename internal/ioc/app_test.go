package ioc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTask struct {
	stopped int
	err     error
}

func (f *fakeTask) Start(context.Context) {}

type stoppableTask struct {
	fakeTask
}

func (s *stoppableTask) Stop(context.Context) error {
	s.stopped++
	return s.err
}

func TestApp_StopTasks(t *testing.T) {
	t.Parallel()
	plain := &fakeTask{}
	ok := &stoppableTask{}
	failed := &stoppableTask{fakeTask{err: errors.New("mock close error")}}

	app := &App{Tasks: []Task{plain, failed, ok}}
	app.StopTasks(context.Background())

	assert.Equal(t, 0, plain.stopped)
	// 前一个任务停止失败不影响后面的任务
	assert.Equal(t, 1, failed.stopped)
	assert.Equal(t, 1, ok.stopped)
}
