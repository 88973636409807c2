package domain

import (
	"time"
)

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAffiliate Role = "affiliate"
	RoleAdmin     Role = "admin"
)

// User 用户目录里的用户，通知只关心名字和邮箱
type User struct {
	ID           string
	Name         string
	Email     string
	Role      Role
	DeletedAt time.Time // 零值表示未删除
	Ctime     time.Time
	Utime     time.Time
}

func (u *User) IsDeleted() bool {
	return !u.DeletedAt.IsZero()
}

func (u *User) HasEmail() bool {
	return u.Email != ""
}
