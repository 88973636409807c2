package local

import (
	"context"
	"strings"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// UserCache 进程内缓存，过期时间由 go-cache 控制
type UserCache struct {
	c      *ca.Cache
	logger *elog.Component
}

func NewUserCache(c *ca.Cache) *UserCache {
	return &UserCache{
		c:      c,
		logger: elog.DefaultLogger,
	}
}

func (l *UserCache) Get(_ context.Context, id string) (domain.User, error) {
	v, ok := l.c.Get(cache.UserKey(id))
	if !ok {
		return domain.User{}, cache.ErrKeyNotFound
	}
	u, ok := v.(domain.User)
	if !ok {
		return domain.User{}, cache.ErrKeyNotFound
	}
	return u, nil
}

func (l *UserCache) Set(_ context.Context, u domain.User) error {
	l.c.Set(cache.UserKey(u.ID), u, ca.DefaultExpiration)
	return nil
}

func (l *UserCache) Del(_ context.Context, id string) error {
	l.c.Delete(cache.UserKey(id))
	return nil
}

// Watch 监听 redis 上用户键的变化，其他实例改动了用户就把本地的副本删掉。
// 需要 redis 打开 notify-keyspace-events，阻塞直到 ctx 结束。
func (l *UserCache) Watch(ctx context.Context, rdb *redis.Client) {
	l.checkKeyspaceEvents(ctx, rdb)
	pubsub := rdb.PSubscribe(ctx, "__keyspace@*__:"+cache.UserPrefix+":*")
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			l.handleKeyEvent(msg.Channel, msg.Payload)
		}
	}
}

// handleKeyEvent channel 形如 __keyspace@0__:user:u1，payload 是事件名
func (l *UserCache) handleKeyEvent(channel, event string) {
	parts := strings.SplitN(channel, ":", 2)
	if len(parts) < 2 {
		l.logger.Error("监听redis键不正确", elog.String("channel", channel))
		return
	}
	key := parts[1]
	// 用户变更都会删除 redis 里的键，set 只是查库之后的回填，不用处理
	switch event {
	case "del", "expired", "evicted":
		l.c.Delete(key)
	}
}

// checkKeyspaceEvents redis 没有打开键空间通知时，别的实例删除用户之后本地缓存要等到过期才会失效
func (l *UserCache) checkKeyspaceEvents(ctx context.Context, rdb *redis.Client) {
	res, err := rdb.ConfigGet(ctx, "notify-keyspace-events").Result()
	if err != nil {
		l.logger.Warn("无法读取redis键空间通知配置，本地用户缓存只能等待过期", elog.FieldErr(err))
		return
	}
	flags := res["notify-keyspace-events"]
	if !keyspaceEventsEnabled(flags) {
		l.logger.Warn("redis没有打开键空间通知，本地用户缓存只能等待过期",
			elog.String("notify-keyspace-events", flags))
	}
}

// keyspaceEventsEnabled 需要 K，以及 g 和 x 或者 A
func keyspaceEventsEnabled(flags string) bool {
	if !strings.Contains(flags, "K") {
		return false
	}
	return strings.Contains(flags, "A") ||
		(strings.Contains(flags, "g") && strings.Contains(flags, "x"))
}
