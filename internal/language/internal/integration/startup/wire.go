//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/language"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
)

func InitModule() (*language.Module, error) {
	wire.Build(testioc.InitDB, language.InitModule)
	return new(language.Module), nil
}
