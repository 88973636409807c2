package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// PromotionParams 营销模板的参数
type PromotionParams struct {
	Name        string // 必填
	Headline    string // 必填
	Code        string // 优惠券模板必填
	Discount    string
	ProductName string
	Link        string
	ExpiresAt   string
}

func promotionParams(p Payload) PromotionParams {
	return PromotionParams{
		Name:        p.Required("name"),
		Headline:    p.Required("headline"),
		Code:        p.Required("code"),
		Discount:    p.Optional("discount"),
		ProductName: p.Required("productName"),
		Link:        p.Optional("link"),
		ExpiresAt:   p.Optional("expiresAt"),
	}
}

// broadcast 没有模板
func marketingTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypePromotion: func(p Payload) Rendered {
			v := promotionParams(p)
			return Rendered{
				Subject: v.Headline,
				HTML: page("Promotion",
					heading(v.Headline),
					greeting(v.Name),
					optionalPara("Save <strong>%s</strong> on your next order.", v.Discount),
					optionalPara("Offer ends %s.", v.ExpiresAt),
					button(v.Link, "Shop the Sale")),
			}
		},
		domain.TypeNewArrival: func(p Payload) Rendered {
			v := promotionParams(p)
			return Rendered{
				Subject: fmt.Sprintf("New arrival: %s", v.ProductName),
				HTML: page("New Arrival",
					heading("Just landed"),
					greeting(v.Name),
					para("<strong>%s</strong> just arrived in the store.", v.ProductName),
					button(v.Link, "Take a Look")),
			}
		},
		domain.TypeCouponAvailable: func(p Payload) Rendered {
			v := promotionParams(p)
			return Rendered{
				Subject: "A coupon is waiting for you",
				HTML: page("Coupon",
					heading("Here's a coupon for you"),
					greeting(v.Name),
					para("Use code <strong>%s</strong> at checkout.", v.Code),
					optionalPara("It gives you %s off.", v.Discount),
					optionalPara("Valid until %s.", v.ExpiresAt),
					button(v.Link, "Use Coupon")),
			}
		},
		domain.TypeAbandonedCart: func(p Payload) Rendered {
			v := promotionParams(p)
			return Rendered{
				Subject: "You left something in your cart",
				HTML: page("Abandoned Cart",
					heading("Still thinking it over?"),
					greeting(v.Name),
					para("<strong>%s</strong> is still in your cart. Complete your order before it sells out.", v.ProductName),
					button(v.Link, "Return to Cart")),
			}
		},
	}
}
