package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/errs"
)

// Channel 通知渠道
type Channel string

const (
	ChannelInApp Channel = "in_app" // 站内信
	ChannelEmail Channel = "email"  // 邮件
	ChannelPush  Channel = "push"   // 推送，尚未接入
	ChannelSMS   Channel = "sms"    // 短信，尚未接入
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelInApp, ChannelEmail, ChannelPush, ChannelSMS:
		return true
	default:
		return false
	}
}

func (c Channel) String() string {
	return string(c)
}

// EntityModel 关联实体的模型名
type EntityModel string

const (
	EntityOrder     EntityModel = "Order"
	EntityProduct   EntityModel = "Product"
	EntityUser      EntityModel = "User"
	EntityAffiliate EntityModel = "Affiliate"
	EntityBooking   EntityModel = "Booking"
)

func (m EntityModel) Valid() bool {
	switch m {
	case EntityOrder, EntityProduct, EntityUser, EntityAffiliate, EntityBooking:
		return true
	default:
		return false
	}
}

// ClickAction 用户点击通知之后的跳转
type ClickAction struct {
	URL      string `json:"url"`
	External bool   `json:"external"`
}

// RelatedEntity 产生通知的业务对象，只是一个查询线索，不代表归属关系
type RelatedEntity struct {
	ID    string      `json:"id"`
	Model EntityModel `json:"model"`
}

// Notification 通知领域模型，与发送渠道无关
type Notification struct {
	ID            uint64           // 通知唯一标识
	Recipient     string           // 接收者用户ID，空字符串代表广播
	Type          NotificationType // 通知类型
	Title         string
	Message       string
	ClickAction   *ClickAction
	RelatedEntity *RelatedEntity
	Channels      []Channel // 请求的发送渠道
	IsRead        bool
	ReadAt        time.Time
	ExpiresAt     time.Time // 零值表示永不过期
	Ctime         time.Time
	Utime         time.Time
}

// IsBroadcast 没有指定接收者的通知
func (n *Notification) IsBroadcast() bool {
	return n.Recipient == ""
}

// MarkAsRead 只有第一次调用生效，返回值表示状态是否发生了变化
func (n *Notification) MarkAsRead(now time.Time) bool {
	if n.IsRead {
		return false
	}
	n.IsRead = true
	n.ReadAt = now
	return true
}

func (n *Notification) Validate() error {
	if !n.Type.Valid() {
		return fmt.Errorf("%w: Type = %q", errs.ErrInvalidParameter, n.Type)
	}

	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: Title 不能为空", errs.ErrInvalidParameter)
	}

	if strings.TrimSpace(n.Message) == "" {
		return fmt.Errorf("%w: Message 不能为空", errs.ErrInvalidParameter)
	}

	if len(n.Channels) == 0 {
		return fmt.Errorf("%w: Channels 不能为空", errs.ErrInvalidParameter)
	}

	for _, c := range n.Channels {
		if !c.Valid() {
			return fmt.Errorf("%w: Channel = %q", errs.ErrInvalidParameter, c)
		}
	}

	if n.ClickAction != nil && n.ClickAction.URL == "" {
		return fmt.Errorf("%w: ClickAction.URL 不能为空", errs.ErrInvalidParameter)
	}

	if n.RelatedEntity != nil {
		if n.RelatedEntity.ID == "" {
			return fmt.Errorf("%w: RelatedEntity.ID 不能为空", errs.ErrInvalidParameter)
		}
		if !n.RelatedEntity.Model.Valid() {
			return fmt.Errorf("%w: RelatedEntity.Model = %q", errs.ErrInvalidParameter, n.RelatedEntity.Model)
		}
	}
	return nil
}

func (n *Notification) MarshalChannels() (string, error) {
	jsonBytes, err := json.Marshal(n.Channels)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}

// SendRequest 发送通知的入参
type SendRequest struct {
	Recipient       string           `json:"recipient"`
	Type            NotificationType `json:"type"`
	Title           string           `json:"title"`
	Message         string           `json:"message"`
	Channels        []Channel        `json:"channels"`
	TemplatePayload map[string]any   `json:"templatePayload,omitempty"`
	ClickAction     *ClickAction     `json:"clickAction,omitempty"`
	RelatedEntity   *RelatedEntity   `json:"relatedEntity,omitempty"`
	ExpiresAt       time.Time        `json:"expiresAt,omitempty"`
}

// Notification 根据请求构造通知记录，重复的渠道只保留第一次出现的
func (r SendRequest) Notification() Notification {
	channels := make([]Channel, 0, len(r.Channels))
	seen := make(map[Channel]struct{}, len(r.Channels))
	for _, c := range r.Channels {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		channels = append(channels, c)
	}
	return Notification{
		Recipient:     r.Recipient,
		Type:          r.Type,
		Title:         r.Title,
		Message:       r.Message,
		ClickAction:   r.ClickAction,
		RelatedEntity: r.RelatedEntity,
		Channels:      channels,
		ExpiresAt:     r.ExpiresAt,
	}
}
