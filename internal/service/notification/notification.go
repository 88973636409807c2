package notification

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service 通知查询服务
//
//go:generate mockgen -source=./notification.go -destination=./mocks/notification.mock.go -package=notificationmocks -typed Service
type Service interface {
	// GetByID 根据ID获取通知记录
	GetByID(ctx context.Context, id uint64) (domain.Notification, error)

	// MarkAsRead 只有接收者本人可以标记，重复标记保持第一次的已读时间
	MarkAsRead(ctx context.Context, id uint64, recipient string) (domain.Notification, error)

	// ListByRecipient 用户自己的通知，最新的在前
	ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, offset, limit int) ([]domain.Notification, error)

	CountUnread(ctx context.Context, recipient string) (int64, error)

	// ListByType 管理后台按类型查询
	ListByType(ctx context.Context, typ domain.NotificationType, offset, limit int) ([]domain.Notification, error)
}

// notificationService 通知服务实现
type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService 创建通知服务实例
func NewNotificationService(repo repository.NotificationRepository) Service {
	return &notificationService{
		repo: repo,
	}
}

func (s *notificationService) GetByID(ctx context.Context, id uint64) (domain.Notification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uint64, recipient string) (domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	if n.IsBroadcast() || n.Recipient != recipient {
		return domain.Notification{}, fmt.Errorf("%w: id=%d", errs.ErrPermissionDenied, id)
	}
	if n.IsRead {
		return n, nil
	}
	return s.repo.MarkAsRead(ctx, id, time.Now())
}

func (s *notificationService) ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, offset, limit int) ([]domain.Notification, error) {
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient 不能为空", errs.ErrInvalidParameter)
	}
	offset, limit = page(offset, limit)
	return s.repo.ListByRecipient(ctx, recipient, unreadOnly, offset, limit)
}

func (s *notificationService) CountUnread(ctx context.Context, recipient string) (int64, error) {
	if recipient == "" {
		return 0, fmt.Errorf("%w: recipient 不能为空", errs.ErrInvalidParameter)
	}
	return s.repo.CountUnread(ctx, recipient)
}

func (s *notificationService) ListByType(ctx context.Context, typ domain.NotificationType, offset, limit int) ([]domain.Notification, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: Type = %q", errs.ErrInvalidParameter, typ)
	}
	offset, limit = page(offset, limit)
	return s.repo.ListByType(ctx, typ, offset, limit)
}

func page(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return offset, limit
}
