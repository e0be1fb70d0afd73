//go:build wireinject

package startup

import (
	"github.com/google/wire"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/hariprasad1114/codemaster/internal/topic"
)

func InitModule() (*topic.Module, error) {
	wire.Build(testioc.InitDB, topic.InitModule)
	return new(topic.Module), nil
}
