package email

import (
	"fmt"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"github.com/hashicorp/go-multierror"
)

const DefaultTimeout = 10 * time.Second

// Config SMTP 连接配置，对应配置文件里的 smtp
type Config struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	From     string        `yaml:"from"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Validate 一次性报告所有缺失的配置项
func (c Config) Validate() error {
	var err *multierror.Error
	if c.Host == "" {
		err = multierror.Append(err, fmt.Errorf("smtp.host 不能为空"))
	}
	if c.Port <= 0 {
		err = multierror.Append(err, fmt.Errorf("smtp.port 非法: %d", c.Port))
	}
	if c.Username == "" {
		err = multierror.Append(err, fmt.Errorf("smtp.username 不能为空"))
	}
	if c.Password == "" {
		err = multierror.Append(err, fmt.Errorf("smtp.password 不能为空"))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidEmailConfig, err)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.From == "" {
		c.From = c.Username
	}
	return c
}
