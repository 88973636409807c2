package ioc

import (
	"os"
	"strconv"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/service/email"
	"gitee.com/flycash/bazaarfly-notification/internal/service/email/metrics"
	"gitee.com/flycash/bazaarfly-notification/internal/service/email/tracing"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/joho/godotenv"
)

// InitSMTPSender 配置文件里的 smtp 可以被环境变量（包括 .env 文件）覆盖
func InitSMTPSender() *email.SMTPSender {
	if err := godotenv.Load(); err != nil {
		elog.DefaultLogger.Debug("没有加载 .env 文件", elog.FieldErr(err))
	}
	cfg, err := loadSMTPConfig()
	if err != nil {
		panic(err)
	}
	sender, err := email.NewSMTPSender(cfg)
	if err != nil {
		panic(err)
	}
	return sender
}

func loadSMTPConfig() (email.Config, error) {
	type Config struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
		Timeout  string
	}
	var raw Config
	if err := econf.UnmarshalKey("smtp", &raw); err != nil {
		return email.Config{}, err
	}
	overrideString(&raw.Host, "SMTP_HOST")
	overrideString(&raw.Username, "SMTP_USER")
	overrideString(&raw.Password, "SMTP_PASS")
	overrideString(&raw.From, "SMTP_FROM")
	overrideString(&raw.Timeout, "SMTP_TIMEOUT")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return email.Config{}, err
		}
		raw.Port = port
	}

	cfg := email.Config{
		Host:     raw.Host,
		Port:     raw.Port,
		Username: raw.Username,
		Password: raw.Password,
		From:     raw.From,
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return email.Config{}, err
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// InitEmailSender 外层是 tracing，里层是 metrics
func InitEmailSender(s *email.SMTPSender) email.Sender {
	return tracing.NewSender(metrics.NewSender(s))
}
