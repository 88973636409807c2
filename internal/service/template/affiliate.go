package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// AffiliateParams 推广员相关模板的参数
type AffiliateParams struct {
	Name          string // 必填
	Amount        string // 佣金和提现模板必填
	OrderID       string // 佣金模板必填
	Reason        string
	DashboardLink string
}

func affiliateParams(p Payload) AffiliateParams {
	return AffiliateParams{
		Name:          p.Required("name"),
		Amount:        p.Amount("amount"),
		OrderID:       p.Required("orderId"),
		Reason:        p.Optional("reason"),
		DashboardLink: p.Optional("dashboardLink"),
	}
}

func affiliateTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypeAffiliateApplicationReceived: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: "We received your affiliate application",
				HTML: page("Application Received",
					heading("Application received"),
					greeting(v.Name),
					para("Thanks for applying to the %s affiliate program. Our team will review your application within 2 business days.", brandName)),
			}
		},
		domain.TypeAffiliateApproved: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: "Welcome to the affiliate program!",
				HTML: page("Application Approved",
					heading("You're in!"),
					greeting(v.Name),
					para("Your affiliate application has been approved. You can start sharing your links and earning commission right away."),
					button(v.DashboardLink, "Open Dashboard")),
			}
		},
		domain.TypeAffiliateRejected: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: "Update on your affiliate application",
				HTML: page("Application Rejected",
					heading("Application not approved"),
					greeting(v.Name),
					para("Unfortunately we are unable to approve your affiliate application at this time."),
					optionalPara("Reason: %s", v.Reason)),
			}
		},
		domain.TypeAffiliateSuspended: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: "Your affiliate account has been suspended",
				HTML: page("Account Suspended",
					heading("Affiliate account suspended"),
					greeting(v.Name),
					para("Your affiliate account has been suspended and your links are no longer earning commission."),
					optionalPara("Reason: %s", v.Reason)),
			}
		},
		domain.TypeCommissionEarned: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: fmt.Sprintf("You earned %s in commission", v.Amount),
				HTML: page("Commission Earned",
					heading("New commission"),
					greeting(v.Name),
					para("You earned <strong>%s</strong> from order <strong>#%s</strong>. It will be available once the order is completed.", v.Amount, v.OrderID),
					button(v.DashboardLink, "View Earnings")),
			}
		},
		domain.TypeCommissionApproved: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Commission of %s approved", v.Amount),
				HTML: page("Commission Approved",
					heading("Commission approved"),
					greeting(v.Name),
					para("Your commission of <strong>%s</strong> from order <strong>#%s</strong> has been approved and added to your balance.", v.Amount, v.OrderID),
					button(v.DashboardLink, "View Earnings")),
			}
		},
		domain.TypePayoutRequested: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Payout request of %s received", v.Amount),
				HTML: page("Payout Requested",
					heading("Payout requested"),
					greeting(v.Name),
					para("We received your payout request of <strong>%s</strong>. It will be processed within 3 business days.", v.Amount)),
			}
		},
		domain.TypePayoutProcessed: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your payout of %s has been sent", v.Amount),
				HTML: page("Payout Processed",
					heading("Payout sent"),
					greeting(v.Name),
					para("Your payout of <strong>%s</strong> has been processed and sent to your payout account.", v.Amount)),
			}
		},
		domain.TypePayoutFailed: func(p Payload) Rendered {
			v := affiliateParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Your payout of %s failed", v.Amount),
				HTML: page("Payout Failed",
					heading("Payout failed"),
					greeting(v.Name),
					para("We could not process your payout of <strong>%s</strong>. The amount has been returned to your balance.", v.Amount),
					optionalPara("Reason: %s", v.Reason),
					button(v.DashboardLink, "Update Payout Details")),
			}
		},
	}
}
