//go:build wireinject

package company

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/company/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/company/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/company/internal/service"
	"github.com/hariprasad1114/codemaster/internal/company/internal/web"
)

var ProviderSet = wire.NewSet(
	InitTablesOnce,
	repository.NewCompanyRepository,
	service.NewCompanyService,
	web.NewHandler,
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CompanyDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMCompanyDAO(db)
}
