package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/errs"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./user.go -destination=./mocks/user.mock.go -package=daomocks -typed UserDAO
type UserDAO interface {
	// FindActiveByID 只查询没有被软删除的用户
	FindActiveByID(ctx context.Context, id string) (User, error)
	// FindByID 包括已经被软删除的用户
	FindByID(ctx context.Context, id string) (User, error)
	// Upsert 用户目录同步过来的用户，存在则更新
	Upsert(ctx context.Context, u User) error
	SoftDelete(ctx context.Context, id string) error
}

// User 用户表，通知只用到其中的联系方式
type User struct {
	ID        string         `gorm:"primaryKey;type:VARCHAR(64)"`
	Name      string         `gorm:"type:VARCHAR(128);NOT NULL"`
	Email     sql.NullString `gorm:"type:VARCHAR(256)"`
	Role      string         `gorm:"type:VARCHAR(32);NOT NULL;DEFAULT:'customer'"`
	DeletedAt int64          `gorm:"NOT NULL;DEFAULT:0;comment:'软删除时间，毫秒，0 表示未删除'"`
	Ctime     int64
	Utime     int64
}

func (User) TableName() string {
	return "users"
}

type userDAO struct {
	db *egorm.Component
}

func NewUserDAO(db *egorm.Component) UserDAO {
	return &userDAO{db: db}
}

func (d *userDAO) FindActiveByID(ctx context.Context, id string) (User, error) {
	return d.find(d.db.WithContext(ctx).Where("id = ? AND deleted_at = ?", id, 0), id)
}

func (d *userDAO) FindByID(ctx context.Context, id string) (User, error) {
	return d.find(d.db.WithContext(ctx).Where("id = ?", id), id)
}

func (d *userDAO) find(query *gorm.DB, id string) (User, error) {
	var u User
	err := query.First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, fmt.Errorf("%w: id=%s", errs.ErrUserNotFound, id)
		}
		return User{}, err
	}
	return u, nil
}

func (d *userDAO) Upsert(ctx context.Context, u User) error {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role", "utime"}),
	}).Create(&u).Error
}

func (d *userDAO) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND deleted_at = ?", id, 0).
		Updates(map[string]any{
			"deleted_at": now,
			"utime":      now,
		}).Error
}
