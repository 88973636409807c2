package template

import (
	"fmt"
	"strings"
)

const brandName = "Bazaarfly"

const layoutHTML = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>%[1]s</title></head>
<body style="margin:0;padding:0;background:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
<table width="100%%" cellpadding="0" cellspacing="0" style="padding:24px 0;">
<tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;">
<tr><td style="font-size:20px;font-weight:bold;color:#f97316;padding-bottom:16px;">%[2]s</td></tr>
<tr><td style="font-size:15px;line-height:1.6;color:#333333;">%[3]s</td></tr>
<tr><td style="font-size:12px;color:#999999;padding-top:24px;">&copy; %[2]s. You are receiving this email because you have an account with us.</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`

// page 所有模板共用的外框
func page(title string, blocks ...string) string {
	return fmt.Sprintf(layoutHTML, title, brandName, strings.Join(blocks, "\n"))
}

func heading(text string) string {
	return fmt.Sprintf(`<h2 style="margin:0 0 12px;">%s</h2>`, text)
}

func para(format string, args ...any) string {
	return "<p>" + fmt.Sprintf(format, args...) + "</p>"
}

// button link 为空时不渲染
func button(link, label string) string {
	if link == "" {
		return ""
	}
	return fmt.Sprintf(`<p><a href="%s" style="display:inline-block;background:#f97316;color:#ffffff;padding:10px 20px;border-radius:4px;text-decoration:none;">%s</a></p>`, link, label)
}

// optionalPara value 为空时不渲染
func optionalPara(format, value string) string {
	if value == "" {
		return ""
	}
	return para(format, value)
}

func greeting(name string) string {
	return para("Hi %s,", name)
}
