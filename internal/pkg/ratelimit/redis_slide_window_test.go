//go:build e2e

package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRedisSlidingWindowLimiter(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedisSlidingWindowLimiterTestSuite))
}

type RedisSlidingWindowLimiterTestSuite struct {
	suite.Suite
	rdb redis.Cmdable
}

func (s *RedisSlidingWindowLimiterTestSuite) SetupSuite() {
	s.rdb = redis.NewClient(&redis.Options{Addr: "localhost:6379"})
}

// 生成唯一的测试键，避免测试冲突
func (s *RedisSlidingWindowLimiterTestSuite) uniqueKey(name string) string {
	return fmt.Sprintf("test:%s:%d", name, time.Now().UnixNano())
}

func (s *RedisSlidingWindowLimiterTestSuite) TestLimit() {
	t := s.T()
	ctx := context.Background()
	limiter := NewRedisSlidingWindowLimiter(s.rdb, 200*time.Millisecond, 3)
	key := s.uniqueKey("limit")

	for i := 0; i < 3; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		assert.False(t, limited)
	}
	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.True(t, limited)

	// 窗口滑过去之后恢复
	time.Sleep(250 * time.Millisecond)
	limited, err = limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.False(t, limited)
}

func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_KeysIsolated() {
	t := s.T()
	ctx := context.Background()
	limiter := NewRedisSlidingWindowLimiter(s.rdb, time.Second, 1)

	limited, err := limiter.Limit(ctx, s.uniqueKey("a"))
	require.NoError(t, err)
	assert.False(t, limited)
	limited, err = limiter.Limit(ctx, s.uniqueKey("b"))
	require.NoError(t, err)
	assert.False(t, limited)
}

func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_SharedAcrossInstances() {
	t := s.T()
	ctx := context.Background()
	key := s.uniqueKey("shared")
	l1 := NewRedisSlidingWindowLimiter(s.rdb, time.Second, 2)
	l2 := NewRedisSlidingWindowLimiter(s.rdb, time.Second, 2)

	// 两个实例各放行一次，窗口里要有两个成员
	limited, err := l1.Limit(ctx, key)
	require.NoError(t, err)
	assert.False(t, limited)
	limited, err = l2.Limit(ctx, key)
	require.NoError(t, err)
	assert.False(t, limited)

	cnt, err := s.rdb.ZCard(ctx, "ratelimit:"+key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	limited, err = l1.Limit(ctx, key)
	require.NoError(t, err)
	assert.True(t, limited)
}
