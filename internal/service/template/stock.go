package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// ProductParams 库存和价格模板的参数
type ProductParams struct {
	Name        string // 必填
	ProductName string // 必填
	ProductLink string
	Quantity    string
	Price       string
	OldPrice    string
}

func productParams(p Payload) ProductParams {
	return ProductParams{
		Name:        p.Required("name"),
		ProductName: p.Required("productName"),
		ProductLink: p.Optional("productLink"),
		Quantity:    p.Required("quantity"),
		Price:       p.Amount("price"),
		OldPrice:    p.Amount("oldPrice"),
	}
}

func stockTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypeLowStock: func(p Payload) Rendered {
			v := productParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Only %s left: %s", v.Quantity, v.ProductName),
				HTML: page("Low Stock",
					heading("Hurry, it's almost gone"),
					greeting(v.Name),
					para("<strong>%s</strong> from your wishlist is running low. Only %s left in stock.", v.ProductName, v.Quantity),
					button(v.ProductLink, "Buy Now")),
			}
		},
		domain.TypeOutOfStock: func(p Payload) Rendered {
			v := productParams(p)
			return Rendered{
				Subject: fmt.Sprintf("%s is out of stock", v.ProductName),
				HTML: page("Out of Stock",
					heading("Out of stock"),
					greeting(v.Name),
					para("<strong>%s</strong> is currently out of stock. We will let you know when it is back.", v.ProductName),
					button(v.ProductLink, "View Product")),
			}
		},
		domain.TypeBackInStock: func(p Payload) Rendered {
			v := productParams(p)
			return Rendered{
				Subject: fmt.Sprintf("%s is back in stock", v.ProductName),
				HTML: page("Back in Stock",
					heading("It's back!"),
					greeting(v.Name),
					para("<strong>%s</strong> is back in stock. Get it before it sells out again.", v.ProductName),
					button(v.ProductLink, "Shop Now")),
			}
		},
		domain.TypePriceDrop: func(p Payload) Rendered {
			v := productParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Price drop on %s", v.ProductName),
				HTML: page("Price Drop",
					heading("Price drop alert"),
					greeting(v.Name),
					para("<strong>%s</strong> dropped from <s>%s</s> to <strong>%s</strong>.", v.ProductName, v.OldPrice, v.Price),
					button(v.ProductLink, "Shop Now")),
			}
		},
	}
}
