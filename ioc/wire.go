//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/ai"
	"github.com/hariprasad1114/codemaster/internal/company"
	"github.com/hariprasad1114/codemaster/internal/language"
	"github.com/hariprasad1114/codemaster/internal/pkg/middleware"
	"github.com/hariprasad1114/codemaster/internal/runner"
	"github.com/hariprasad1114/codemaster/internal/topic"
	"github.com/hariprasad1114/codemaster/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		company.InitModule,
		topic.InitModule,
		language.InitModule,
		InitQuestionModule,
		InitProgressModule,
		user.InitModule,
		ai.InitModule,
		runner.InitModule,
		wire.FieldsOf(new(*user.Module), "SessionSvc", "CleanJob"),
		middleware.NewCheckSessionMiddlewareBuilder,
		initHandlers,
		InitSession,
		initGinxServer,
		initCronJobs,
	)
	return new(App), nil
}
