//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/progress"
	"github.com/hariprasad1114/codemaster/internal/question"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
)

func InitModule() (*progress.Module, error) {
	wire.Build(testioc.InitDB, progress.InitModule)
	return new(progress.Module), nil
}

func InitQuestionModule() (*question.Module, error) {
	wire.Build(testioc.InitDB, question.InitModule)
	return new(question.Module), nil
}
