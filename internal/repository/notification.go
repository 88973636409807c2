package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// NotificationRepository 通知仓储接口
//
//go:generate mockgen -source=./notification.go -destination=./mocks/notification.mock.go -package=repomocks -typed NotificationRepository
type NotificationRepository interface {
	// Create 创建一条通知
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)

	// GetByID 根据ID获取通知
	GetByID(ctx context.Context, id uint64) (domain.Notification, error)

	// MarkAsRead 标记已读并返回最新的记录，重复调用不会修改 ReadAt
	MarkAsRead(ctx context.Context, id uint64, now time.Time) (domain.Notification, error)

	// ListByRecipient 查询某个用户的通知，按创建时间倒序
	ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, offset, limit int) ([]domain.Notification, error)

	CountUnread(ctx context.Context, recipient string) (int64, error)

	// ListByType 管理后台按类型查询
	ListByType(ctx context.Context, typ domain.NotificationType, offset, limit int) ([]domain.Notification, error)

	// DeleteExpired 清理过期通知，返回删除的条数
	DeleteExpired(ctx context.Context, now time.Time, limit int) (int64, error)
}

// notificationRepository 通知仓储实现
type notificationRepository struct {
	dao dao.NotificationDAO
}

// NewNotificationRepository 创建通知仓储实例
func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{
		dao: d,
	}
}

// Create 创建一条通知
func (r *notificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	n, err := r.dao.Create(ctx, r.toEntity(notification))
	if err != nil {
		return domain.Notification{}, err
	}
	return r.toDomain(n), nil
}

// GetByID 根据ID获取通知
func (r *notificationRepository) GetByID(ctx context.Context, id uint64) (domain.Notification, error) {
	n, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	return r.toDomain(n), nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id uint64, now time.Time) (domain.Notification, error) {
	// 是否真正更新不影响结果，已读的记录原样返回
	_, err := r.dao.MarkAsRead(ctx, id, now.UnixMilli())
	if err != nil {
		return domain.Notification{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.ListByRecipient(ctx, recipient, unreadOnly, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(_ int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipient string) (int64, error) {
	return r.dao.CountUnread(ctx, recipient)
}

func (r *notificationRepository) ListByType(ctx context.Context, typ domain.NotificationType, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.ListByType(ctx, typ.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(_ int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) DeleteExpired(ctx context.Context, now time.Time, limit int) (int64, error) {
	return r.dao.DeleteExpired(ctx, now.UnixMilli(), limit)
}

// toEntity 将领域对象转换为DAO实体
func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	channels, _ := n.MarshalChannels()
	entity := dao.Notification{
		ID: n.ID,
		Recipient: sql.NullString{
			String: n.Recipient,
			Valid:  n.Recipient != "",
		},
		Type:     n.Type.String(),
		Title:    n.Title,
		Message:  n.Message,
		Channels: channels,
		IsRead:   n.IsRead,
	}
	if n.ClickAction != nil {
		entity.ClickURL = n.ClickAction.URL
		entity.ClickExternal = n.ClickAction.External
	}
	if n.RelatedEntity != nil {
		entity.RelatedID = n.RelatedEntity.ID
		entity.RelatedModel = string(n.RelatedEntity.Model)
	}
	if !n.ReadAt.IsZero() {
		entity.ReadAt = n.ReadAt.UnixMilli()
	}
	if !n.ExpiresAt.IsZero() {
		entity.ExpiresAt = n.ExpiresAt.UnixMilli()
	}
	return entity
}

// toDomain 将DAO实体转换为领域对象
func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	var channels []domain.Channel
	_ = json.Unmarshal([]byte(n.Channels), &channels)

	res := domain.Notification{
		ID:        n.ID,
		Recipient: n.Recipient.String,
		Type:      domain.NotificationType(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Channels:  channels,
		IsRead:    n.IsRead,
		Ctime:     time.UnixMilli(n.Ctime),
		Utime:     time.UnixMilli(n.Utime),
	}
	if n.ClickURL != "" {
		res.ClickAction = &domain.ClickAction{
			URL:      n.ClickURL,
			External: n.ClickExternal,
		}
	}
	if n.RelatedID != "" {
		res.RelatedEntity = &domain.RelatedEntity{
			ID:    n.RelatedID,
			Model: domain.EntityModel(n.RelatedModel),
		}
	}
	if n.ReadAt > 0 {
		res.ReadAt = time.UnixMilli(n.ReadAt)
	}
	if n.ExpiresAt > 0 {
		res.ExpiresAt = time.UnixMilli(n.ExpiresAt)
	}
	return res
}
