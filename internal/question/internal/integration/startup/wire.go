//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/company"
	"github.com/hariprasad1114/codemaster/internal/language"
	"github.com/hariprasad1114/codemaster/internal/question"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/hariprasad1114/codemaster/internal/topic"
)

func InitModules() (*Modules, error) {
	wire.Build(testioc.InitDB,
		company.InitModule,
		topic.InitModule,
		language.InitModule,
		question.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}
