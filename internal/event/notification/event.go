package notification

import (
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

const (
	EventName = "bazaarfly_domain_events"
)

// Event 业务方（订单、支付、库存等）发出的领域事件，每条事件对应一条通知
type Event struct {
	// EventID 用于去重，为空时不去重
	EventID   string         `json:"eventId,omitempty"`
	Recipient string         `json:"recipient"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Channels  []string       `json:"channels"`
	Payload   map[string]any `json:"payload,omitempty"`

	ClickURL      string `json:"clickUrl,omitempty"`
	ClickExternal bool   `json:"clickExternal,omitempty"`
	RelatedID     string `json:"relatedId,omitempty"`
	RelatedModel  string `json:"relatedModel,omitempty"`
	// ExpiresAt 毫秒，0 表示永不过期
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

func (e Event) SendRequest() domain.SendRequest {
	req := domain.SendRequest{
		Recipient:       e.Recipient,
		Type:            domain.NotificationType(e.Type),
		Title:           e.Title,
		Message:         e.Message,
		Channels:        make([]domain.Channel, 0, len(e.Channels)),
		TemplatePayload: e.Payload,
	}
	for _, c := range e.Channels {
		req.Channels = append(req.Channels, domain.Channel(c))
	}
	if e.ClickURL != "" {
		req.ClickAction = &domain.ClickAction{URL: e.ClickURL, External: e.ClickExternal}
	}
	if e.RelatedID != "" {
		req.RelatedEntity = &domain.RelatedEntity{ID: e.RelatedID, Model: domain.EntityModel(e.RelatedModel)}
	}
	if e.ExpiresAt > 0 {
		req.ExpiresAt = time.UnixMilli(e.ExpiresAt)
	}
	return req
}
