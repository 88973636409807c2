package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// WalletParams 钱包模板的参数，三个字段都是必填
type WalletParams struct {
	Name    string
	Amount  string
	OrderID string
}

func walletParams(p Payload) WalletParams {
	return WalletParams{
		Name:    p.Required("name"),
		Amount:  p.Amount("amount"),
		OrderID: p.Required("orderId"),
	}
}

func walletTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypeWalletCredited: func(p Payload) Rendered {
			v := walletParams(p)
			return Rendered{
				Subject: fmt.Sprintf("%s has been added to your wallet", v.Amount),
				HTML: page("Wallet Credited",
					heading("Wallet credited"),
					greeting(v.Name),
					para("<strong>%s</strong> has been credited to your wallet (reference <strong>#%s</strong>).", v.Amount, v.OrderID)),
			}
		},
		domain.TypeWalletDebited: func(p Payload) Rendered {
			v := walletParams(p)
			return Rendered{
				Subject: fmt.Sprintf("%s has been deducted from your wallet", v.Amount),
				HTML: page("Wallet Debited",
					heading("Wallet debited"),
					greeting(v.Name),
					para("<strong>%s</strong> has been debited from your wallet for order <strong>#%s</strong>.", v.Amount, v.OrderID)),
			}
		},
		domain.TypeWalletWithdrawalRequested: func(p Payload) Rendered {
			v := walletParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Withdrawal request of %s received", v.Amount),
				HTML: page("Withdrawal Requested",
					heading("Withdrawal requested"),
					greeting(v.Name),
					para("We received your withdrawal request of <strong>%s</strong> (reference <strong>#%s</strong>).", v.Amount, v.OrderID)),
			}
		},
		domain.TypeWalletWithdrawalCompleted: func(p Payload) Rendered {
			v := walletParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Withdrawal of %s completed", v.Amount),
				HTML: page("Withdrawal Completed",
					heading("Withdrawal completed"),
					greeting(v.Name),
					para("Your withdrawal of <strong>%s</strong> (reference <strong>#%s</strong>) has been completed.", v.Amount, v.OrderID)),
			}
		},
	}
}
