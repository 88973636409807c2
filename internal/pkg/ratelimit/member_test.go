package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisSlidingWindowLimiter_MemberUnique(t *testing.T) {
	t.Parallel()
	const now = int64(1700000000000)
	// 两个实例共用一个 redis 窗口
	l1 := NewRedisSlidingWindowLimiter(nil, 0, 1)
	l2 := NewRedisSlidingWindowLimiter(nil, 0, 1)

	m1 := l1.member(now)
	assert.NotEqual(t, m1, l2.member(now))
	assert.NotEqual(t, m1, l1.member(now))
}
