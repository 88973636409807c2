package tracing

import (
	"context"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/service/email"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Sender 为邮件发送添加链路追踪的装饰器
type Sender struct {
	sender email.Sender
	tracer trace.Tracer
}

func NewSender(s email.Sender) *Sender {
	return &Sender{
		sender: s,
		tracer: otel.Tracer("bazaarfly-notification/email"),
	}
}

func (s *Sender) Send(ctx context.Context, e domain.Email) error {
	ctx, span := s.tracer.Start(ctx, "EmailSender.Send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("email.to", e.To),
			attribute.String("email.subject", e.Subject),
		))
	defer span.End()

	err := s.sender.Send(ctx, e)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
