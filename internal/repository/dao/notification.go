package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/errs"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./notification.go -destination=./mocks/notification.mock.go -package=daomocks -typed NotificationDAO
type NotificationDAO interface {
	// Create 创建单条通知记录
	Create(ctx context.Context, data Notification) (Notification, error)

	// GetByID 根据ID查询通知，已过期的记录视为不存在
	GetByID(ctx context.Context, id uint64) (Notification, error)

	// MarkAsRead 标记已读，已读的记录不会再被修改，返回值表示本次是否真正更新
	MarkAsRead(ctx context.Context, id uint64, readAt int64) (bool, error)

	// ListByRecipient 按接收者查询，unreadOnly 为 true 时只查未读，按创建时间倒序
	ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, offset, limit int) ([]Notification, error)

	// CountUnread 统计接收者的未读通知
	CountUnread(ctx context.Context, recipient string) (int64, error)

	// ListByType 按通知类型查询，按创建时间倒序
	ListByType(ctx context.Context, typ string, offset, limit int) ([]Notification, error)

	// DeleteExpired 删除已经过期的记录，最多删除 limit 条
	DeleteExpired(ctx context.Context, now int64, limit int) (int64, error)
}

// Notification 通知记录表
type Notification struct {
	ID            uint64         `gorm:"primaryKey;comment:'雪花算法ID'"`
	Recipient     sql.NullString `gorm:"column:recipient;type:VARCHAR(64);index:idx_recipient_read_ctime,priority:1;comment:'接收者用户ID，NULL 表示广播'"`
	Type          string         `gorm:"column:type;type:VARCHAR(64);NOT NULL;index:idx_type_ctime,priority:1;comment:'通知类型'"`
	Title         string         `gorm:"column:title;type:VARCHAR(256);NOT NULL"`
	Message       string         `gorm:"column:message;type:TEXT;NOT NULL"`
	ClickURL      string         `gorm:"column:click_url;type:VARCHAR(1024);comment:'点击跳转地址'"`
	ClickExternal bool           `gorm:"column:click_external;comment:'是否站外地址'"`
	RelatedID     string         `gorm:"column:related_id;type:VARCHAR(64);comment:'关联实体ID'"`
	RelatedModel  string         `gorm:"column:related_model;type:VARCHAR(32);comment:'关联实体模型'"`
	Channels      string         `gorm:"column:channels;type:VARCHAR(128);NOT NULL;comment:'请求的渠道，JSON数组'"`
	IsRead        bool           `gorm:"column:is_read;NOT NULL;DEFAULT:false;index:idx_recipient_read_ctime,priority:2"`
	ReadAt        int64          `gorm:"column:read_at;comment:'已读时间，毫秒'"`
	ExpiresAt     int64          `gorm:"column:expires_at;index:idx_expires_at;comment:'过期时间，毫秒，0 表示永不过期'"`
	Ctime         int64          `gorm:"column:ctime;index:idx_type_ctime,priority:2,sort:desc;index:idx_recipient_read_ctime,priority:3,sort:desc"`
	Utime         int64          `gorm:"column:utime"`
}

func (Notification) TableName() string {
	return "notifications"
}

type notificationDAO struct {
	db *egorm.Component
}

// NewNotificationDAO 创建通知DAO实例
func NewNotificationDAO(db *egorm.Component) NotificationDAO {
	return &notificationDAO{
		db: db,
	}
}

func (d *notificationDAO) Create(ctx context.Context, data Notification) (Notification, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	err := d.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		if d.isUniqueConstraintError(err) {
			return Notification{}, fmt.Errorf("%w", errs.ErrNotificationDuplicate)
		}
		return Notification{}, err
	}
	return data, nil
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func (d *notificationDAO) isUniqueConstraintError(err error) bool {
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *notificationDAO) GetByID(ctx context.Context, id uint64) (Notification, error) {
	var notification Notification
	err := d.db.WithContext(ctx).
		Where("id = ?", id).
		Where(notExpired(time.Now().UnixMilli())).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Notification{}, fmt.Errorf("%w: id=%d", errs.ErrNotificationNotFound, id)
		}
		return Notification{}, err
	}
	return notification, nil
}

func (d *notificationDAO) MarkAsRead(ctx context.Context, id uint64, readAt int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
			"utime":   readAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *notificationDAO) ListByRecipient(ctx context.Context, recipient string, unreadOnly bool, offset, limit int) ([]Notification, error) {
	var res []Notification
	query := d.db.WithContext(ctx).Where("recipient = ?", recipient)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	err := query.Where(notExpired(time.Now().UnixMilli())).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *notificationDAO) CountUnread(ctx context.Context, recipient string) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("recipient = ? AND is_read = ?", recipient, false).
		Where(notExpired(time.Now().UnixMilli())).
		Count(&cnt).Error
	return cnt, err
}

func (d *notificationDAO) ListByType(ctx context.Context, typ string, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := d.db.WithContext(ctx).
		Where("type = ?", typ).
		Where(notExpired(time.Now().UnixMilli())).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *notificationDAO) DeleteExpired(ctx context.Context, now int64, limit int) (int64, error) {
	// 每次最多删除 limit 行
	res := d.db.WithContext(ctx).
		Where("expires_at > 0 AND expires_at <= ?", now).
		Limit(limit).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}

// notExpired 过期但还没被清理的记录对外不可见
func notExpired(now int64) clause.Expr {
	return gorm.Expr("(expires_at = 0 OR expires_at > ?)", now)
}
