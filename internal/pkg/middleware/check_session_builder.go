// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hariprasad1114/codemaster/internal/user"
)

// CheckSessionMiddlewareBuilder 校验 session 对应的记录还在，并且没有过期
// 要放在 session.CheckLoginMiddleware 后面
type CheckSessionMiddlewareBuilder struct {
	svc    user.SessionService
	logger *elog.Component
	sp     session.Provider
}

func NewCheckSessionMiddlewareBuilder(svc user.SessionService) *CheckSessionMiddlewareBuilder {
	return &CheckSessionMiddlewareBuilder{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckSessionMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims := sess.Claims()
		_, err = c.svc.Check(ctx, claims.SSID)
		switch {
		case errors.Is(err, user.ErrSessionExpired):
			c.logger.Debug("会话已失效",
				elog.Int64("uid", claims.Uid),
				elog.String("ssid", claims.SSID))
			ctx.AbortWithStatus(http.StatusUnauthorized)
		case err != nil:
			c.logger.Error("查询会话失败",
				elog.Int64("uid", claims.Uid),
				elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusInternalServerError)
		}
	}
}
