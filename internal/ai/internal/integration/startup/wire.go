//go:build wireinject

package startup

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/ai"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
)

func InitModule(root handler.Handler) (*ai.Module, error) {
	wire.Build(
		testioc.InitDB,
		initDAO,
		ai.ProviderSet,
		wire.Struct(new(ai.Module), "*"),
	)
	return new(ai.Module), nil
}

func initDAO(db *egorm.Component) dao.LLMRecordDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMLLMRecordDAO(db)
}
