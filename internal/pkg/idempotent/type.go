package idempotent

import "context"

// Service 判断某个 key 是否已经处理过
//
//go:generate mockgen -source=./type.go -package=idempotentmocks -destination=./mocks/idempotent.mock.go -typed Service
type Service interface {
	// Exists 第一次调用返回 false，之后在有效期内返回 true
	Exists(ctx context.Context, key string) (bool, error)
}
