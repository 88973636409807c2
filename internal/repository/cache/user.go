package cache

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"github.com/pkg/errors"
)

const (
	UserPrefix         = "user"
	DefaultExpiredTime = 15 * time.Minute
)

var ErrKeyNotFound = errors.New("key not found")

// UserCache 缓存用户的联系方式，不缓存密码哈希
//
//go:generate mockgen -source=./user.go -destination=./mocks/user.mock.go -package=cachemocks -typed UserCache
type UserCache interface {
	Get(ctx context.Context, id string) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
	Del(ctx context.Context, id string) error
}

func UserKey(id string) string {
	return fmt.Sprintf("%s:%s", UserPrefix, id)
}
