package template

import (
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
)

// AccountParams 账户和安全模板的参数
type AccountParams struct {
	Name      string // 必填
	Link      string
	Time      string
	IPAddress string
	Device    string
}

func accountParams(p Payload) AccountParams {
	return AccountParams{
		Name:      p.Required("name"),
		Link:      p.Optional("link"),
		Time:      p.Required("time"),
		IPAddress: p.Required("ipAddress"),
		Device:    p.Optional("device"),
	}
}

// profile_updated 和 account_deactivated 没有模板
func accountTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypeWelcome: func(p Payload) Rendered {
			v := accountParams(p)
			return Rendered{
				Subject: fmt.Sprintf("Welcome to %s, %s!", brandName, v.Name),
				HTML: page("Welcome",
					heading(fmt.Sprintf("Welcome to %s", brandName)),
					greeting(v.Name),
					para("Your account is ready. Discover products from hundreds of independent sellers."),
					button(v.Link, "Start Shopping")),
			}
		},
		domain.TypeEmailVerified: func(p Payload) Rendered {
			v := accountParams(p)
			return Rendered{
				Subject: "Your email address has been verified",
				HTML: page("Email Verified",
					heading("Email verified"),
					greeting(v.Name),
					para("Thanks for verifying your email address. You will now receive order updates here.")),
			}
		},
	}
}

func securityTemplates() map[domain.NotificationType]RenderFunc {
	return map[domain.NotificationType]RenderFunc{
		domain.TypePasswordChanged: func(p Payload) Rendered {
			v := accountParams(p)
			return Rendered{
				Subject: "Your password has been changed",
				HTML: page("Password Changed",
					heading("Password changed"),
					greeting(v.Name),
					para("The password for your account was changed at %s.", v.Time),
					para("If you did not make this change, reset your password immediately and contact support.")),
			}
		},
		domain.TypePasswordResetRequested: func(p Payload) Rendered {
			v := accountParams(p)
			return Rendered{
				Subject: "Reset your password",
				HTML: page("Password Reset",
					heading("Password reset requested"),
					greeting(v.Name),
					para("We received a request to reset your password. The link below expires in 1 hour."),
					button(v.Link, "Reset Password"),
					para("If you did not request a reset, you can ignore this email.")),
			}
		},
		domain.TypeLoginAlert: func(p Payload) Rendered {
			v := accountParams(p)
			return Rendered{
				Subject: "New sign-in to your account",
				HTML: page("Login Alert",
					heading("New sign-in detected"),
					greeting(v.Name),
					para("Your account was signed in at %s from IP address %s.", v.Time, v.IPAddress),
					optionalPara("Device: %s", v.Device)),
			}
		},
		domain.TypeSuspiciousActivity: func(p Payload) Rendered {
			v := accountParams(p)
			return Rendered{
				Subject: "Suspicious activity on your account",
				HTML: page("Suspicious Activity",
					heading("We noticed something unusual"),
					greeting(v.Name),
					para("We detected suspicious activity on your account at %s from IP address %s.", v.Time, v.IPAddress),
					para("Please change your password and review your recent orders."),
					button(v.Link, "Secure My Account")),
			}
		},
	}
}
