//go:build e2e

package idempotent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisService_Exists(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	t.Cleanup(func() {
		client.Close()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis server is not available")
		return
	}

	svc := NewRedisService(client, time.Second)
	key := fmt.Sprintf("evt-%d", time.Now().UnixNano())

	exists, err := svc.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	ttl, err := client.TTL(ctx, keyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
