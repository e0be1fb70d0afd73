//go:build wireinject

package language

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/language/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/language/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/language/internal/service"
	"github.com/hariprasad1114/codemaster/internal/language/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewLanguageRepository,
		service.NewLanguageService,
		service.NewTutorialService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.LanguageDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMLanguageDAO(db)
}
