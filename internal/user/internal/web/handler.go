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

package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hariprasad1114/codemaster/internal/pkg/resp"
	"github.com/hariprasad1114/codemaster/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

const homeURL = "/"

type Handler struct {
	oauth2Svc  service.OAuth2Service
	userSvc    service.UserService
	sessionSvc service.SessionService
	logger     *elog.Component
}

func NewHandler(oauth2Svc service.OAuth2Service,
	userSvc service.UserService,
	sessionSvc service.SessionService) *Handler {
	return &Handler{
		oauth2Svc:  oauth2Svc,
		userSvc:    userSvc,
		sessionSvc: sessionSvc,
		logger:     elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api")
	g.GET("/login", ginx.W(h.Login))
	g.GET("/callback", ginx.W(h.Callback))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api")
	g.GET("/logout", ginx.S(h.Logout))
	g.GET("/auth/user", ginx.S(h.Profile))
}

func (h *Handler) Login(ctx *ginx.Context) (ginx.Result, error) {
	state, err := h.sessionSvc.NewState(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return resp.Redirect(ctx, h.oauth2Svc.AuthURL(state))
}

func (h *Handler) Callback(ctx *ginx.Context) (ginx.Result, error) {
	var req CallbackReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return resp.Abort(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	err := h.sessionSvc.VerifyState(ctx, req.State)
	switch {
	case errors.Is(err, service.ErrInvalidState):
		return resp.Abort(ctx, http.StatusUnauthorized, unauthorizedResult)
	case err != nil:
		return systemErrorResult, err
	}
	info, err := h.oauth2Svc.VerifyCode(ctx, req.Code)
	if err != nil {
		h.logger.Warn("校验登录 code 失败", elog.FieldErr(err))
		return resp.Abort(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	user, err := h.userSvc.Upsert(ctx, info)
	if err != nil {
		return systemErrorResult, err
	}
	data := map[string]string{"sub": user.Sub}
	sess, err := session.NewSessionBuilder(ctx, user.Id).
		SetJwtData(data).Build()
	if err != nil {
		return systemErrorResult, err
	}
	err = h.sessionSvc.Record(ctx, sess.Claims().SSID, user.Id, data)
	if err != nil {
		return systemErrorResult, err
	}
	return resp.Redirect(ctx, homeURL)
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.sessionSvc.Remove(ctx, sess.Claims().SSID)
	if err != nil {
		return systemErrorResult, err
	}
	err = sess.Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return resp.Redirect(ctx, homeURL)
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return resp.Abort(ctx, http.StatusNotFound, userNotFoundResult)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUser(u),
	}, nil
}
