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
	"github.com/hariprasad1114/codemaster/internal/company/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/company/internal/service"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/hariprasad1114/codemaster/internal/pkg/resp"
	"github.com/hariprasad1114/codemaster/internal/pkg/validatorx"
)

type Handler struct {
	svc    service.CompanyService
	logger *elog.Component
}

func NewHandler(svc service.CompanyService) *Handler {
	validatorx.Register()
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/companies")
	g.GET("", ginx.W(h.List))
	g.GET("/:slug", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/companies")
	g.POST("", ginx.S(h.Create))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	companies, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult("Failed to fetch companies"), err
	}
	return ginx.Result{
		Data: slice.Map(companies, func(idx int, src domain.Company) Company {
			return newCompany(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	c, err := h.svc.GetBySlug(ctx, ctx.Context.Param("slug"))
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		return resp.Abort(ctx, http.StatusNotFound, notFoundResult)
	case err != nil:
		return systemErrorResult("Failed to fetch company"), err
	}
	return ginx.Result{
		Data: newCompany(c),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	var req CreateCompanyReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidInputResult)
	}
	c, err := h.svc.Create(ctx, req.toDomain())
	switch {
	case mysqlx.IsConstraintViolation(err):
		h.logger.Warn("创建公司失败", elog.FieldErr(err), elog.String("slug", req.Slug))
		return resp.Abort(ctx, http.StatusBadRequest, invalidInputResult)
	case err != nil:
		return systemErrorResult("Failed to create company"), err
	}
	return resp.Created(ctx, newCompany(c))
}
