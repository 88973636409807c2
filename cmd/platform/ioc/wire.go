//go:build wireinject

package ioc

import (
	"gitee.com/flycash/bazaarfly-notification/internal/ioc"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	"gitee.com/flycash/bazaarfly-notification/internal/repository/dao"
	notificationsvc "gitee.com/flycash/bazaarfly-notification/internal/service/notification"
	"gitee.com/flycash/bazaarfly-notification/internal/web"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitDistributedLock,
		ioc.InitIDGenerator,
		ioc.InitGoCache,
		ioc.InitMQ,
		ioc.InitIdempotentService,
		ioc.InitJWTAuth,
	)
	userSet = wire.NewSet(
		ioc.InitLocalUserCache,
		ioc.InitRedisUserCache,
		repository.NewUserRepository,
		dao.NewUserDAO,
	)
	notificationSvcSet = wire.NewSet(
		notificationsvc.NewNotificationService,
		repository.NewNotificationRepository,
		dao.NewNotificationDAO,
	)
	sendNotificationSvcSet = wire.NewSet(
		notificationsvc.NewSendService,
		ioc.InitDispatcher,
		ioc.InitInAppProducer,
		ioc.InitSMTPSender,
		ioc.InitEmailSender,
	)
	taskSet = wire.NewSet(
		ioc.InitExpiredCleanupTask,
		ioc.InitEventConsumer,
		ioc.InitUserEventConsumer,
		ioc.InitTasks,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 用户目录
		userSet,

		// 通知服务
		notificationSvcSet,
		sendNotificationSvcSet,

		// 后台任务
		taskSet,

		// HTTP 服务器
		ioc.InitAdminSendLimiter,
		web.NewHandler,
		ioc.InitWeb,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
