package main

import (
	"context"
	"time"

	"gitee.com/flycash/bazaarfly-notification/cmd/platform/ioc"
	prodioc "gitee.com/flycash/bazaarfly-notification/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	egoApp := ego.New()
	tp := prodioc.InitZipkinTracer()
	app := ioc.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartTasks(ctx)

	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		func() server.Server {
			return app.Web
		}(),
	).AfterStop(func() error {
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		app.StopTasks(shutdownCtx)
		if err := app.SMTP.Close(); err != nil {
			elog.Error("关闭 SMTP 连接失败", elog.FieldErr(err))
		}
		return tp.Shutdown(shutdownCtx)
	}).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
