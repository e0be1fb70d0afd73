package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/hariprasad1114/codemaster/internal/pkg/middleware"
)

// Handler 各个模块的 web.Handler
type Handler interface {
	PublicRoutes(server *gin.Engine)
	PrivateRoutes(server *gin.Engine)
}

func initGinxServer(sp session.Provider,
	checkSession *middleware.CheckSessionMiddlewareBuilder,
	hdls []Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	origins := econf.GetStringSlice("web.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if origin == o {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	for _, hdl := range hdls {
		hdl.PublicRoutes(res.Engine)
	}
	// 登录校验
	res.Use(session.CheckLoginMiddleware(), checkSession.Build())
	for _, hdl := range hdls {
		hdl.PrivateRoutes(res.Engine)
	}
	return res
}
