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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/hariprasad1114/codemaster/internal/pkg/resp"
	"github.com/hariprasad1114/codemaster/internal/pkg/validatorx"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/errs"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/service"
)

var invalidInputResult = ginx.Result{
	Code: errs.InvalidInput.Code,
	Msg:  errs.InvalidInput.Msg,
}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	validatorx.Register()
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/topics")
	g.GET("", ginx.W(h.List))
	g.GET("/:slug", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/topics", ginx.S(h.Create))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	topics, err := h.svc.List(ctx)
	if err != nil {
		return ginx.Result{Code: errs.SystemError.Code, Msg: "Failed to fetch topics"}, err
	}
	return ginx.Result{
		Data: slice.Map(topics, func(idx int, src domain.Topic) Topic {
			return newTopic(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	t, err := h.svc.GetBySlug(ctx, ctx.Context.Param("slug"))
	if errors.Is(err, service.ErrTopicNotFound) {
		return resp.Abort(ctx, http.StatusNotFound, ginx.Result{
			Code: errs.NotFound.Code,
			Msg:  errs.NotFound.Msg,
		})
	}
	if err != nil {
		return ginx.Result{Code: errs.SystemError.Code, Msg: "Failed to fetch topic"}, err
	}
	return ginx.Result{Data: newTopic(t)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	var req CreateTopicReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidInputResult)
	}
	t, err := h.svc.Create(ctx, domain.Topic{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if mysqlx.IsConstraintViolation(err) {
		h.logger.Warn("创建主题失败", elog.FieldErr(err))
		return resp.Abort(ctx, http.StatusBadRequest, invalidInputResult)
	}
	if err != nil {
		return ginx.Result{Code: errs.SystemError.Code, Msg: "Failed to create topic"}, err
	}
	return resp.Created(ctx, newTopic(t))
}
