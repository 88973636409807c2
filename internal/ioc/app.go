package ioc

import (
	"context"

	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/bazaarfly-notification/internal/service/email"
	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web   *egin.Component
	Tasks []Task
	// SMTP 长连接，退出时关闭
	SMTP *email.SMTPSender
}

func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		go func(t Task) {
			t.Start(ctx)
		}(t)
	}
}

// StopTasks 先取消 StartTasks 的 ctx 再调用
func (a *App) StopTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		s, ok := t.(Stopper)
		if !ok {
			continue
		}
		if err := s.Stop(ctx); err != nil {
			elog.Error("停止后台任务失败", elog.FieldErr(err))
		}
	}
}
