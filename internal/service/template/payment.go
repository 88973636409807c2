package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// PaymentParams 支付和退款模板的参数
type PaymentParams struct {
	Name        string // 必填
	OrderNumber string // 必填
	Amount      string // 必填，两位小数
	Reason      string
	PaymentLink string
}

func paymentParams(p Payload) PaymentParams {
	return PaymentParams{
		Name:        p.Required("name"),
		OrderNumber: p.Required("orderNumber"),
		Amount:      p.Amount("amount"),
		Reason:      p.Optional("reason"),
		PaymentLink: p.Optional("paymentLink"),
	}
}

func paymentTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypePaymentSuccess: func(p Payload) Rendered {
			v := paymentParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Payment received for order #%s", v.OrderNumber),
				HTML: page("Payment Successful",
					heading("Payment successful"),
					greeting(v.Name),
					para("We received your payment of <strong>%s</strong> for order <strong>#%s</strong>.", v.Amount, v.OrderNumber)),
			}
		},
		domain.TypePaymentFailed: func(p Payload) Rendered {
			v := paymentParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Payment failed for order #%s", v.OrderNumber),
				HTML: page("Payment Failed",
					heading("Your payment did not go through"),
					greeting(v.Name),
					para("The payment of <strong>%s</strong> for order <strong>#%s</strong> failed.", v.Amount, v.OrderNumber),
					optionalPara("Reason: %s", v.Reason),
					button(v.PaymentLink, "Retry Payment")),
			}
		},
		domain.TypePaymentPending: func(p Payload) Rendered {
			v := paymentParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Payment pending for order #%s", v.OrderNumber),
				HTML: page("Payment Pending",
					heading("Waiting for payment confirmation"),
					greeting(v.Name),
					para("Your payment of <strong>%s</strong> for order <strong>#%s</strong> is pending. We will let you know once it is confirmed.", v.Amount, v.OrderNumber),
					button(v.PaymentLink, "Complete Payment")),
			}
		},
		domain.TypeRefundInitiated: func(p Payload) Rendered {
			v := paymentParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Refund initiated for order #%s", v.OrderNumber),
				HTML: page("Refund Initiated",
					heading("Your refund is on its way"),
					greeting(v.Name),
					para("A refund of <strong>%s</strong> for order <strong>#%s</strong> has been initiated.", v.Amount, v.OrderNumber),
					optionalPara("Reason: %s", v.Reason)),
			}
		},
		domain.TypeRefundCompleted: func(p Payload) Rendered {
			v := paymentParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Refund completed for order #%s", v.OrderNumber),
				HTML: page("Refund Completed",
					heading("Refund completed"),
					greeting(v.Name),
					para("The refund of <strong>%s</strong> for order <strong>#%s</strong> has been completed.", v.Amount, v.OrderNumber)),
			}
		},
	}
}
