package email

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"github.com/gotomicro/ego/core/elog"
	"github.com/microcosm-cc/bluemonday"
	"github.com/wneessen/go-mail"
)

const sslPort = 465

// mailClient go-mail 客户端里用到的部分
type mailClient interface {
	DialWithContext(ctx context.Context) error
	Send(messages ...*mail.Msg) error
	// Reset 会先 NOOP 检查连接是否还活着
	Reset() error
	Close() error
}

// SMTPSender 整个进程共用一条 SMTP 连接，第一次发送时才建立。
// 复用之前先探活，空闲太久被服务端或者超时断开的连接会在发送前重建。
// 发送失败之后连接会被丢弃，下一次调用重新建立，失败的那一次不会重试。
type SMTPSender struct {
	cfg       Config
	newClient func(cfg Config) (mailClient, error)
	stripper  *bluemonday.Policy

	mu     sync.Mutex
	client mailClient

	logger *elog.Component
}

// NewSMTPSender 配置不完整时直接返回 errs.ErrInvalidEmailConfig，不会发起任何连接
func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SMTPSender{
		cfg:       cfg.withDefaults(),
		newClient: newGoMailClient,
		stripper:  bluemonday.StrictPolicy(),
		logger:    elog.DefaultLogger,
	}, nil
}

func newGoMailClient(cfg Config) (mailClient, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Port == sslPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return mail.NewClient(cfg.Host, opts...)
}

func (s *SMTPSender) Send(ctx context.Context, email domain.Email) error {
	msg, err := s.newMsg(email)
	if err != nil {
		s.logger.Error("构造邮件失败", elog.String("to", email.To), elog.FieldErr(err))
		return fmt.Errorf("%w: to=%s", errs.ErrSendEmailFailed, email.To)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.connect(ctx)
	if err != nil {
		s.logger.Error("连接SMTP服务器失败",
			elog.String("host", s.cfg.Host),
			elog.Int("port", s.cfg.Port),
			elog.FieldErr(err))
		return fmt.Errorf("%w: to=%s", errs.ErrSendEmailFailed, email.To)
	}

	err = client.Send(msg)
	if err != nil {
		s.logger.Error("发送邮件失败",
			elog.String("to", email.To),
			elog.String("subject", email.Subject),
			elog.FieldErr(err))
		s.drop()
		return fmt.Errorf("%w: to=%s", errs.ErrSendEmailFailed, email.To)
	}
	return nil
}

// connect 调用方持有锁
func (s *SMTPSender) connect(ctx context.Context) (mailClient, error) {
	if s.client != nil {
		err := s.client.Reset()
		if err == nil {
			return s.client, nil
		}
		// 邮件还没有发出去，重新建连不算重试
		s.logger.Info("SMTP连接已失效，重新建立连接", elog.FieldErr(err))
		s.drop()
	}
	client, err := s.newClient(s.cfg)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	if err = client.DialWithContext(ctx); err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// drop 调用方持有锁
func (s *SMTPSender) drop() {
	if s.client == nil {
		return
	}
	_ = s.client.Close()
	s.client = nil
}

// Close 释放连接，之后再调用 Send 会重新建立连接
func (s *SMTPSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *SMTPSender) newMsg(email domain.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, err
	}
	if err := msg.To(email.To); err != nil {
		return nil, err
	}
	msg.Subject(email.Subject)

	text := email.Text
	if text == "" {
		text = s.plainText(email.HTML)
	}
	msg.SetBodyString(mail.TypeTextPlain, text)
	if email.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	}
	return msg, nil
}

// plainText 去掉 HTML 标签之后的纯文本
func (s *SMTPSender) plainText(body string) string {
	return strings.TrimSpace(html.UnescapeString(s.stripper.Sanitize(body)))
}
