package template

import (
	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// Rendered 渲染好的邮件主题和正文
type Rendered struct {
	Subject string
	HTML    string
}

// RenderFunc 渲染永远不会失败，缺失的字段用占位符代替
type RenderFunc func(p Payload) Rendered

// Catalog 通知类型到邮件模板的映射，不是每种类型都有模板
type Catalog struct {
	renders map[domain.NotificationType]RenderFunc
}

// NewCatalog 启动时构造一次，之后只读
func NewCatalog() *Catalog {
	c := &Catalog{
		renders: make(map[domain.NotificationType]RenderFunc, len(domain.AllNotificationTypes())),
	}
	for _, group := range []map[domain.NotificationType]RenderFunc{
		orderTemplates(),
		paymentTemplates(),
		stockTemplates(),
		affiliateTemplates(),
		walletTemplates(),
		accountTemplates(),
		securityTemplates(),
		adminTemplates(),
		marketingTemplates(),
	} {
		for typ, fn := range group {
			c.renders[typ] = fn
		}
	}
	return c
}

// Render 第二个返回值为 false 表示没有对应的模板，由调用方兜底
func (c *Catalog) Render(typ domain.NotificationType, p Payload) (Rendered, bool) {
	fn, ok := c.renders[typ]
	if !ok {
		return Rendered{}, false
	}
	if p == nil {
		p = Payload{}
	}
	return fn(p), true
}
