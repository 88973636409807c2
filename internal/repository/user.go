package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/cache"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
)

// UserRepository 用户目录，通知只读取活跃用户的联系方式
//
//go:generate mockgen -source=./user.go -destination=./mocks/user.mock.go -package=repomocks -typed UserRepository
type UserRepository interface {
	// FindActiveByID 已经软删除的用户返回 errs.ErrUserNotFound
	FindActiveByID(ctx context.Context, id string) (domain.User, error)
	// Save 已经注销的用户不会被更新，也不会被恢复
	Save(ctx context.Context, u domain.User) error
	SoftDelete(ctx context.Context, id string) error
}

// LocalUserCache 区分进程内缓存和 redis 缓存
type LocalUserCache interface {
	cache.UserCache
}

type userRepository struct {
	dao    dao.UserDAO
	local  LocalUserCache
	remote cache.UserCache
	group  singleflight.Group
	logger *elog.Component
}

func NewUserRepository(d dao.UserDAO, local LocalUserCache, remote cache.UserCache) UserRepository {
	return &userRepository{
		dao:    d,
		local:  local,
		remote: remote,
		logger: elog.DefaultLogger,
	}
}

func (r *userRepository) FindActiveByID(ctx context.Context, id string) (domain.User, error) {
	u, err := r.local.Get(ctx, id)
	if err == nil {
		return u, nil
	}

	u, err = r.remote.Get(ctx, id)
	if err == nil {
		_ = r.local.Set(ctx, u)
		return u, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		// redis 出问题了也要能发通知，降级查库
		r.logger.Warn("从redis获取用户失败", elog.String("id", id), elog.FieldErr(err))
	}

	v, err, _ := r.group.Do(id, func() (any, error) {
		entity, err1 := r.dao.FindActiveByID(ctx, id)
		if err1 != nil {
			return domain.User{}, err1
		}
		found := r.toDomain(entity)
		if err2 := r.remote.Set(ctx, found); err2 != nil {
			r.logger.Warn("回写redis用户缓存失败", elog.String("id", id), elog.FieldErr(err2))
		}
		_ = r.local.Set(ctx, found)
		return found, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return v.(domain.User), nil
}

func (r *userRepository) Save(ctx context.Context, u domain.User) error {
	// 这里要看到已经软删除的用户
	old, err := r.dao.FindByID(ctx, u.ID)
	switch {
	case err == nil:
		if r.toDomain(old).IsDeleted() {
			r.logger.Info("用户已注销，忽略更新", elog.String("id", u.ID))
			return nil
		}
	case !errors.Is(err, errs.ErrUserNotFound):
		return err
	}

	err = r.dao.Upsert(ctx, r.toEntity(u))
	if err != nil {
		return err
	}
	r.evict(ctx, u.ID)
	return nil
}

func (r *userRepository) SoftDelete(ctx context.Context, id string) error {
	err := r.dao.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *userRepository) evict(ctx context.Context, id string) {
	_ = r.local.Del(ctx, id)
	if err := r.remote.Del(ctx, id); err != nil {
		r.logger.Error("删除redis用户缓存失败", elog.String("id", id), elog.FieldErr(err))
	}
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	entity := dao.User{
		ID:   u.ID,
		Name: u.Name,
		Email: sql.NullString{
			String: u.Email,
			Valid:  u.Email != "",
		},
		Role: string(u.Role),
	}
	if entity.Role == "" {
		entity.Role = string(domain.RoleCustomer)
	}
	return entity
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	res := domain.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email.String,
		Role:  domain.Role(u.Role),
		Ctime: time.UnixMilli(u.Ctime),
		Utime: time.UnixMilli(u.Utime),
	}
	if u.DeletedAt > 0 {
		res.DeletedAt = time.UnixMilli(u.DeletedAt)
	}
	return res
}
