package user

import (
	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

const (
	EventName = "bazaarfly_user_events"

	TypeUserUpserted = "user_upserted"
	TypeUserDeleted  = "user_deleted"
)

// Event 用户目录同步过来的变更，通知服务只保存发邮件需要的字段
type Event struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (e Event) User() domain.User {
	return domain.User{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
		Role:  domain.Role(e.Role),
	}
}
