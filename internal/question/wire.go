//go:build wireinject

package question

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/question/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/question/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/question/internal/service"
	"github.com/hariprasad1114/codemaster/internal/question/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initQuestionDAO,
		dao.NewGORMSolutionDAO,
		repository.NewQuestionRepository,
		repository.NewSolutionRepository,
		service.NewQuestionService,
		service.NewSolutionService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

// 建表依赖 companies、topics 和 programming_languages，
// 所以要在对应模块初始化之后再初始化
func initQuestionDAO(db *egorm.Component) dao.QuestionDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMQuestionDAO(db)
}
