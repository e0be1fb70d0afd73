//go:build wireinject

package ai

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/web"
)

var ProviderSet = wire.NewSet(
	repository.NewLLMRecordRepository,
	llm.NewLLMService,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		ProviderSet,
		initDAO,
		initPlatformHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
