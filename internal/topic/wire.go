//go:build wireinject

package topic

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/service"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewTopicRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.TopicDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMTopicDAO(db)
}
