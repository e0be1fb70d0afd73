package ioc

import (
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

// App 需要启动的服务和定时任务
type App struct {
	Web   *egin.Component
	Crons []ecron.Ecron
}
