package domain

// Email 渲染好的一封邮件
type Email struct {
	To      string
	Subject string
	HTML    string
	// Text 纯文本版本，为空时由发送方从 HTML 中去掉标签得到
	Text string
}
