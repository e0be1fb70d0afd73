//go:build wireinject

package runner

import (
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/question"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/web"
)

func InitModule(qm *question.Module) (*Module, error) {
	wire.Build(
		initRunner,
		wire.FieldsOf(new(*question.Module), "Svc"),
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
