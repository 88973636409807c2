// Package metrics 为邮件发送添加指标收集的装饰器
package metrics

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/service/email"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Sender 为邮件发送添加指标收集的装饰器
type Sender struct {
	sender              email.Sender
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
}

// NewSender 多次创建时复用已经注册的指标
func NewSender(s email.Sender) *Sender {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "email_send_duration_seconds",
			Help:       "邮件发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"status"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_send_total",
			Help: "邮件发送总数",
		},
		[]string{"status"},
	)

	return &Sender{
		sender:              s,
		sendDurationSummary: register(sendDurationSummary),
		sendCounter:         register(sendCounter),
	}
}

func register[T prometheus.Collector](c T) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	panic(err)
}

func (s *Sender) Send(ctx context.Context, e domain.Email) error {
	start := time.Now()
	err := s.sender.Send(ctx, e)

	status := statusSuccess
	if err != nil {
		status = statusFailed
	}
	s.sendCounter.WithLabelValues(status).Inc()
	s.sendDurationSummary.WithLabelValues(status).Observe(time.Since(start).Seconds())
	return err
}
