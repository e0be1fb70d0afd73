//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/hariprasad1114/codemaster/internal/user/internal/job"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/cache"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/user/internal/service"
	"github.com/hariprasad1114/codemaster/internal/user/internal/web"
)

var ProviderSet = wire.NewSet(
	dao.NewGORMSessionDAO,
	cache.NewUserECache,
	cache.NewStateECache,
	repository.NewCachedUserRepository,
	repository.NewSessionRepository,
	service.NewUserService,
	service.NewSessionService,
	job.NewCleanExpiredSessionsJob,
	web.NewHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		ProviderSet,
		initDAO,
		initOAuth2Service,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
