package email

import (
	"context"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// Sender 邮件发送，服务端接收了邮件就返回
//
//go:generate mockgen -source=./types.go -destination=./mocks/sender.mock.go -package=emailmocks -typed Sender
type Sender interface {
	Send(ctx context.Context, email domain.Email) error
}
