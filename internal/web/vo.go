package web

import (
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type Notification struct {
	// 前端 JS 处理不了这么大的整数
	ID            uint64                `json:"id,string"`
	Recipient     string                `json:"recipient,omitempty"`
	Type          string                `json:"type"`
	Title         string                `json:"title"`
	Message       string                `json:"message"`
	ClickAction   *domain.ClickAction   `json:"clickAction,omitempty"`
	RelatedEntity *domain.RelatedEntity `json:"relatedEntity,omitempty"`
	Channels      []string              `json:"channels"`
	IsRead        bool                  `json:"isRead"`
	// 下面的时间都是毫秒，0 表示没有
	ReadAt    int64 `json:"readAt"`
	ExpiresAt int64 `json:"expiresAt"`
	Ctime     int64 `json:"ctime"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:            n.ID,
		Recipient:     n.Recipient,
		Type:          n.Type.String(),
		Title:         n.Title,
		Message:       n.Message,
		ClickAction:   n.ClickAction,
		RelatedEntity: n.RelatedEntity,
		Channels: slice.Map(n.Channels, func(_ int, src domain.Channel) string {
			return src.String()
		}),
		IsRead:    n.IsRead,
		ReadAt:    millis(n.ReadAt),
		ExpiresAt: millis(n.ExpiresAt),
		Ctime:     millis(n.Ctime),
	}
}

func newNotifications(ns []domain.Notification) []Notification {
	return slice.Map(ns, func(_ int, src domain.Notification) Notification {
		return newNotification(src)
	})
}

func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

type ListResp struct {
	Notifications []Notification `json:"notifications"`
}

type CountResp struct {
	Count int64 `json:"count"`
}

// SendReq 管理后台手动发送，ExpiresAt 为毫秒
type SendReq struct {
	Recipient       string                `json:"recipient"`
	Type            string                `json:"type"`
	Title           string                `json:"title"`
	Message         string                `json:"message"`
	Channels        []string              `json:"channels"`
	TemplatePayload map[string]any        `json:"templatePayload"`
	ClickAction     *domain.ClickAction   `json:"clickAction"`
	RelatedEntity   *domain.RelatedEntity `json:"relatedEntity"`
	ExpiresAt       int64                 `json:"expiresAt"`
}

func (r SendReq) toDomain() domain.SendRequest {
	req := domain.SendRequest{
		Recipient: r.Recipient,
		Type:      domain.NotificationType(r.Type),
		Title:     r.Title,
		Message:   r.Message,
		Channels: slice.Map(r.Channels, func(_ int, src string) domain.Channel {
			return domain.Channel(src)
		}),
		TemplatePayload: r.TemplatePayload,
		ClickAction:     r.ClickAction,
		RelatedEntity:   r.RelatedEntity,
	}
	if r.ExpiresAt > 0 {
		req.ExpiresAt = time.UnixMilli(r.ExpiresAt)
	}
	return req
}
