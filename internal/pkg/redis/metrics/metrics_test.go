package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHook_ProcessHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())

	testCases := []struct {
		name       string
		err        error
		wantStatus string
	}{
		{name: "成功", wantStatus: statusSuccess},
		{name: "key不存在不算失败", err: redis.Nil, wantStatus: statusSuccess},
		{name: "失败", err: errors.New("mock redis error"), wantStatus: statusError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := redis.NewStringCmd(context.Background(), "get", "user:u1")
			before := testutil.ToFloat64(h.commandCounter.WithLabelValues("get", tc.wantStatus))
			err := h.ProcessHook(func(context.Context, redis.Cmder) error {
				return tc.err
			})(context.Background(), cmd)
			assert.Equal(t, tc.err, err)
			assert.Equal(t, before+1, testutil.ToFloat64(h.commandCounter.WithLabelValues("get", tc.wantStatus)))
		})
	}
}

func TestHook_ProcessPipelineHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())

	failed := redis.NewStatusCmd(context.Background(), "set", "k", "v")
	failed.SetErr(errors.New("mock redis error"))
	cmds := []redis.Cmder{redis.NewStatusCmd(context.Background(), "set", "k", "v"), failed}

	_ = h.ProcessPipelineHook(func(context.Context, []redis.Cmder) error {
		return nil
	})(context.Background(), cmds)
	assert.Equal(t, float64(1), testutil.ToFloat64(h.pipelineCounter.WithLabelValues(statusError)))
}

func TestNewHook_RegisterTwice(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	h1 := NewHook(reg)
	h2 := NewHook(reg)
	assert.Same(t, h1.commandCounter, h2.commandCounter)
}
