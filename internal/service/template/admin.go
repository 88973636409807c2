package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// AdminParams 发给管理员的模板参数
type AdminParams struct {
	Name          string // 必填，管理员名字
	OrderNumber   string
	AffiliateName string
	ProductName   string
	Quantity      string
	Amount        string
	Link          string
}

func adminParams(p Payload) AdminParams {
	return AdminParams{
		Name:          p.Required("name"),
		OrderNumber:   p.Required("orderNumber"),
		AffiliateName: p.Required("affiliateName"),
		ProductName:   p.Required("productName"),
		Quantity:      p.Required("quantity"),
		Amount:        p.Amount("amount"),
		Link:          p.Optional("link"),
	}
}

// system_alert 和 system_maintenance 没有模板
func adminTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypeNewOrderAdmin: func(p Payload) Rendered {
			v := adminParams(p)
			return Rendered{
				Subject: fmt.Sprintf("[Admin] New order #%s (%s)", v.OrderNumber, v.Amount),
				HTML: page("New Order",
					heading("New order placed"),
					greeting(v.Name),
					para("Order <strong>#%s</strong> totalling <strong>%s</strong> was just placed.", v.OrderNumber, v.Amount),
					button(v.Link, "Open in Admin")),
			}
		},
		domain.TypeNewAffiliateAdmin: func(p Payload) Rendered {
			v := adminParams(p)
			return Rendered{
				Subject: fmt.Sprintf("[Admin] New affiliate application from %s", v.AffiliateName),
				HTML: page("New Affiliate",
					heading("New affiliate application"),
					greeting(v.Name),
					para("<strong>%s</strong> applied to join the affiliate program and is waiting for review.", v.AffiliateName),
					button(v.Link, "Review Application")),
			}
		},
		domain.TypePayoutRequestAdmin: func(p Payload) Rendered {
			v := adminParams(p)
			return Rendered{
				Subject: fmt.Sprintf("[Admin] Payout request of %s from %s", v.Amount, v.AffiliateName),
				HTML: page("Payout Request",
					heading("Payout request"),
					greeting(v.Name),
					para("<strong>%s</strong> requested a payout of <strong>%s</strong>.", v.AffiliateName, v.Amount),
					button(v.Link, "Review Payout")),
			}
		},
		domain.TypeLowStockAdmin: func(p Payload) Rendered {
			v := adminParams(p)
			return Rendered{
				Subject: fmt.Sprintf("[Admin] Low stock: %s", v.ProductName),
				HTML: page("Low Stock",
					heading("Low stock warning"),
					greeting(v.Name),
					para("<strong>%s</strong> has only %s units left.", v.ProductName, v.Quantity),
					button(v.Link, "Restock")),
			}
		},
	}
}
