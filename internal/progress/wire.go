//go:build wireinject

package progress

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/service"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewProgressRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.ProgressDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMProgressDAO(db)
}
