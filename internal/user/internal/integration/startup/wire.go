//go:build wireinject

package startup

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/hariprasad1114/codemaster/internal/user"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/user/internal/service"
)

func InitModule(oauth2Svc service.OAuth2Service) (*user.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitCache,
		initDAO,
		user.ProviderSet,
		wire.Struct(new(user.Module), "*"),
	)
	return new(user.Module), nil
}

func initDAO(db *egorm.Component) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db)
}
