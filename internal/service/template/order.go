package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// OrderParams 订单相关模板的参数
type OrderParams struct {
	Name        string // 必填
	OrderNumber string // 必填
	OrderLink   string
	TrackingID  string
}

func orderParams(p Payload) OrderParams {
	return OrderParams{
		Name:        p.Required("name"),
		OrderNumber: p.Required("orderNumber"),
		OrderLink:   p.Optional("orderLink"),
		TrackingID:  p.Optional("trackingId"),
	}
}

func orderTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypeOrderPlaced: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Order Confirmation - #%s", o.OrderNumber),
				HTML: page("Order Confirmation",
					heading("Thank you for your order!"),
					greeting(o.Name),
					para("We have received your order <strong>#%s</strong> and it is now being reviewed by the seller.", o.OrderNumber),
					button(o.OrderLink, "View Order")),
			}
		},
		domain.TypeOrderConfirmed: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your order #%s has been confirmed", o.OrderNumber),
				HTML: page("Order Confirmed",
					heading("Order confirmed"),
					greeting(o.Name),
					para("Good news! The seller has confirmed your order <strong>#%s</strong>.", o.OrderNumber),
					button(o.OrderLink, "View Order")),
			}
		},
		domain.TypeOrderProcessing: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your order #%s is being processed", o.OrderNumber),
				HTML: page("Order Processing",
					heading("We are preparing your order"),
					greeting(o.Name),
					para("Your order <strong>#%s</strong> is being packed and will ship soon.", o.OrderNumber),
					button(o.OrderLink, "View Order")),
			}
		},
		domain.TypeOrderShipped: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your order #%s has shipped", o.OrderNumber),
				HTML: page("Order Shipped",
					heading("Your order is on its way"),
					greeting(o.Name),
					para("Your order <strong>#%s</strong> has been handed to the courier.", o.OrderNumber),
					optionalPara("Tracking ID: <strong>%s</strong>", o.TrackingID),
					button(o.OrderLink, "Track Order")),
			}
		},
		domain.TypeOrderOutForDelivery: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your order #%s is out for delivery", o.OrderNumber),
				HTML: page("Out for Delivery",
					heading("Arriving today"),
					greeting(o.Name),
					para("Your order <strong>#%s</strong> is out for delivery. Please keep your phone nearby.", o.OrderNumber),
					optionalPara("Tracking ID: <strong>%s</strong>", o.TrackingID),
					button(o.OrderLink, "Track Order")),
			}
		},
		domain.TypeOrderDelivered: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your order #%s has been delivered", o.OrderNumber),
				HTML: page("Order Delivered",
					heading("Delivered!"),
					greeting(o.Name),
					para("Your order <strong>#%s</strong> has been delivered. We hope you enjoy your purchase.", o.OrderNumber),
					button(o.OrderLink, "Leave a Review")),
			}
		},
		domain.TypeOrderCancelled: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your order #%s has been cancelled", o.OrderNumber),
				HTML: page("Order Cancelled",
					heading("Order cancelled"),
					greeting(o.Name),
					para("Your order <strong>#%s</strong> has been cancelled. Any payment made will be refunded to your original payment method.", o.OrderNumber),
					button(o.OrderLink, "View Order")),
			}
		},
		domain.TypeOrderReturned: func(p Payload) Rendered {
			o := orderParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Return received for order #%s", o.OrderNumber),
				HTML: page("Order Returned",
					heading("We received your return"),
					greeting(o.Name),
					para("The return for order <strong>#%s</strong> has been received and is being inspected.", o.OrderNumber),
					button(o.OrderLink, "View Order")),
			}
		},
	}
}
