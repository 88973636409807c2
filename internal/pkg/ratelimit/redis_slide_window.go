package ratelimit

import (
	"context"
	_ "embed"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/slide_window.lua
	slidingWindowScript string

	_ Limiter = (*RedisSlidingWindowLimiter)(nil)
)

// RedisSlidingWindowLimiter 基于 redis 有序集合的滑动窗口，多个实例共享同一个窗口
type RedisSlidingWindowLimiter struct {
	cmd       redis.Cmdable
	interval  time.Duration
	rate      int
	keyPrefix string
	// instance 区分不同实例在同一毫秒写入的成员
	instance string
	seq      atomic.Int64
}

// NewRedisSlidingWindowLimiter interval 内最多允许 rate 个请求
func NewRedisSlidingWindowLimiter(cmd redis.Cmdable, interval time.Duration, rate int) *RedisSlidingWindowLimiter {
	return &RedisSlidingWindowLimiter{
		cmd:       cmd,
		interval:  interval,
		rate:      rate,
		keyPrefix: "ratelimit:",
		instance:  uuid.Must(uuid.NewV4()).String(),
	}
}

func (r *RedisSlidingWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	now := time.Now().UnixMilli()
	return r.cmd.Eval(ctx, slidingWindowScript,
		[]string{r.keyPrefix + key},
		r.interval.Milliseconds(),
		r.rate,
		now,
		r.member(now),
	).Bool()
}

// member 同一毫秒内的请求也要区分开
func (r *RedisSlidingWindowLimiter) member(now int64) string {
	return strconv.FormatInt(now, 10) + "-" + r.instance + "-" + strconv.FormatInt(r.seq.Add(1), 10)
}
