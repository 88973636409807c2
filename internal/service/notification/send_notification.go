package notification

import (
	"context"
	"fmt"

	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/errs"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	"gitee.com/flycash/bazaarfly-notification/internal/service/channel"
	"gitee.com/flycash/bazaarfly-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/sony/sonyflake"
)

// SendService 负责处理发送
//
//go:generate mockgen -source=./send_notification.go -destination=./mocks/send_notification.mock.go -package=notificationmocks -typed SendService
type SendService interface {
	// SendNotification 先落库，再按请求的顺序逐个渠道发送。
	// 渠道发送失败时同时返回已经落库的记录和错误。
	SendNotification(ctx context.Context, req domain.SendRequest) (domain.Notification, error)
}

type sendService struct {
	repo        repository.NotificationRepository
	dispatcher  *channel.Dispatcher
	idGenerator *sonyflake.Sonyflake
	logger      *elog.Component
}

func NewSendService(repo repository.NotificationRepository, dispatcher *channel.Dispatcher, idGenerator *sonyflake.Sonyflake) SendService {
	return &sendService{
		repo:        repo,
		dispatcher:  dispatcher,
		idGenerator: idGenerator,
		logger:      elog.DefaultLogger,
	}
}

func (s *sendService) SendNotification(ctx context.Context, req domain.SendRequest) (domain.Notification, error) {
	n := req.Notification()
	if err := n.Validate(); err != nil {
		return domain.Notification{}, err
	}

	id, err := s.idGenerator.NextID()
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%w 生成 ID 失败，原因: %w", errs.ErrCreateNotificationFailed, err)
	}
	n.ID = id

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("%w, 原因: %w", errs.ErrCreateNotificationFailed, err)
	}

	// 一个渠道失败不影响其他渠道
	var sendErr *multierror.Error
	payload := template.Payload(req.TemplatePayload)
	for _, c := range created.Channels {
		if err = s.dispatcher.Send(ctx, c, created, payload); err != nil {
			s.logger.Error("渠道发送通知失败",
				elog.Any("notificationID", created.ID),
				elog.String("channel", c.String()),
				elog.FieldErr(err))
			sendErr = multierror.Append(sendErr, fmt.Errorf("%s: %w", c, err))
		}
	}
	if sendErr != nil {
		return created, fmt.Errorf("%w, 原因: %w", errs.ErrSendNotificationFailed, sendErr)
	}
	return created, nil
}
