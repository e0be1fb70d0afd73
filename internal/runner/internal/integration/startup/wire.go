//go:build wireinject

package startup

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/company"
	"github.com/hariprasad1114/codemaster/internal/language"
	"github.com/hariprasad1114/codemaster/internal/question"
	"github.com/hariprasad1114/codemaster/internal/runner"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/service"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/web"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/hariprasad1114/codemaster/internal/topic"
)

func InitModule(r service.Runner) (*runner.Module, error) {
	wire.Build(
		testioc.InitDB,
		initQuestionModule,
		wire.FieldsOf(new(*question.Module), "Svc"),
		web.NewHandler,
		wire.Struct(new(runner.Module), "*"),
	)
	return new(runner.Module), nil
}

// initQuestionModule 题目表依赖公司、主题和编程语言的表
func initQuestionModule(db *egorm.Component) *question.Module {
	if _, err := company.InitModule(db); err != nil {
		panic(err)
	}
	if _, err := topic.InitModule(db); err != nil {
		panic(err)
	}
	if _, err := language.InitModule(db); err != nil {
		panic(err)
	}
	qm, err := question.InitModule(db)
	if err != nil {
		panic(err)
	}
	return qm
}
