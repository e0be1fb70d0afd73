//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/company"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
)

func InitModule() (*company.Module, error) {
	wire.Build(testioc.InitDB, company.InitModule)
	return new(company.Module), nil
}
