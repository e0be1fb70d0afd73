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
	"github.com/hariprasad1114/codemaster/internal/language/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/language/internal/errs"
	"github.com/hariprasad1114/codemaster/internal/language/internal/service"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/hariprasad1114/codemaster/internal/pkg/resp"
	"github.com/hariprasad1114/codemaster/internal/pkg/validatorx"
)

type Handler struct {
	svc         service.LanguageService
	tutorialSvc service.TutorialService
	logger      *elog.Component
}

func NewHandler(svc service.LanguageService, tutorialSvc service.TutorialService) *Handler {
	validatorx.Register()
	return &Handler{
		svc:         svc,
		tutorialSvc: tutorialSvc,
		logger:      elog.DefaultLogger,
	}
}

// PublicRoutes 同一段路径上 gin 只允许一个通配符名字，所以都叫 :language
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/languages")
	g.GET("", ginx.W(h.List))
	g.GET("/:language", ginx.W(h.Detail))
	g.GET("/:language/tutorials", ginx.W(h.Tutorials))
	g.GET("/:language/tutorials/:tutorial", ginx.W(h.TutorialDetail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/languages")
	g.POST("", ginx.S(h.Create))
	g.POST("/:language/tutorials", ginx.S(h.CreateTutorial))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	languages, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult("Failed to fetch languages"), err
	}
	return ginx.Result{
		Data: slice.Map(languages, func(idx int, src domain.Language) Language {
			return newLanguage(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	l, err := h.svc.GetBySlug(ctx, ctx.Context.Param("language"))
	switch {
	case errors.Is(err, service.ErrLanguageNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.LanguageNotFound))
	case err != nil:
		return systemErrorResult("Failed to fetch language"), err
	}
	return ginx.Result{Data: newLanguage(l)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	var req CreateLanguageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidLanguage))
	}
	l, err := h.svc.Create(ctx, domain.Language{
		Name:            req.Name,
		Slug:            req.Slug,
		Icon:            req.Icon,
		Color:           req.Color,
		Description:     req.Description,
		SyntaxHighlight: req.SyntaxHighlight,
	})
	switch {
	case mysqlx.IsConstraintViolation(err):
		h.logger.Warn("创建语言失败", elog.FieldErr(err))
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidLanguage))
	case err != nil:
		return systemErrorResult("Failed to create language"), err
	}
	return resp.Created(ctx, newLanguage(l))
}

func (h *Handler) Tutorials(ctx *ginx.Context) (ginx.Result, error) {
	l, err := h.svc.Resolve(ctx, ctx.Context.Param("language"))
	switch {
	case errors.Is(err, service.ErrLanguageNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.LanguageNotFound))
	case err != nil:
		return systemErrorResult("Failed to fetch tutorials"), err
	}
	tutorials, err := h.tutorialSvc.ListByLanguage(ctx, l.Id)
	if err != nil {
		return systemErrorResult("Failed to fetch tutorials"), err
	}
	return ginx.Result{
		Data: slice.Map(tutorials, func(idx int, src domain.Tutorial) Tutorial {
			return newTutorial(src)
		}),
	}, nil
}

func (h *Handler) TutorialDetail(ctx *ginx.Context) (ginx.Result, error) {
	t, err := h.tutorialSvc.GetBySlug(ctx, ctx.Context.Param("language"), ctx.Context.Param("tutorial"))
	switch {
	case errors.Is(err, service.ErrTutorialNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.TutorialNotFound))
	case err != nil:
		return systemErrorResult("Failed to fetch tutorial"), err
	}
	return ginx.Result{Data: newTutorial(t)}, nil
}

func (h *Handler) CreateTutorial(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	var req CreateTutorialReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidTutorial))
	}
	l, err := h.svc.Resolve(ctx, ctx.Context.Param("language"))
	switch {
	case errors.Is(err, service.ErrLanguageNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.LanguageNotFound))
	case err != nil:
		return systemErrorResult("Failed to create tutorial"), err
	}
	t, err := h.tutorialSvc.Create(ctx, domain.Tutorial{
		LanguageId: l.Id,
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Order:      req.Order,
		Difficulty: domain.Difficulty(req.Difficulty),
	})
	switch {
	case mysqlx.IsConstraintViolation(err):
		h.logger.Warn("创建教程失败", elog.FieldErr(err), elog.Int64("languageId", l.Id))
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidTutorial))
	case err != nil:
		return systemErrorResult("Failed to create tutorial"), err
	}
	return resp.Created(ctx, newTutorial(t))
}
