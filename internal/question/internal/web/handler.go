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
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/hariprasad1114/codemaster/internal/pkg/resp"
	"github.com/hariprasad1114/codemaster/internal/pkg/validatorx"
	"github.com/hariprasad1114/codemaster/internal/question/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/question/internal/errs"
	"github.com/hariprasad1114/codemaster/internal/question/internal/service"
)

type Handler struct {
	svc         service.QuestionService
	solutionSvc service.SolutionService
	logger      *elog.Component
}

func NewHandler(svc service.QuestionService, solutionSvc service.SolutionService) *Handler {
	validatorx.Register()
	return &Handler{
		svc:         svc,
		solutionSvc: solutionSvc,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/questions")
	g.GET("", ginx.W(h.List))
	g.GET("/:question", ginx.W(h.Detail))
	g.GET("/:question/solutions", ginx.W(h.Solutions))
	g.GET("/:question/solutions/:languageId", ginx.W(h.SolutionByLanguage))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/questions")
	g.POST("", ginx.S(h.Create))
	g.POST("/:question/solutions", ginx.S(h.CreateSolution))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	var req ListQuestionReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidFilter))
	}
	questions, err := h.svc.List(ctx, domain.QuestionFilter{
		CompanyId:  req.CompanyId,
		TopicId:    req.TopicId,
		Difficulty: domain.Difficulty(req.Difficulty),
	})
	if err != nil {
		return systemErrorResult("Failed to fetch questions"), err
	}
	return ginx.Result{
		Data: slice.Map(questions, func(idx int, src domain.Question) Question {
			return newQuestion(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	q, err := h.svc.GetBySlug(ctx, ctx.Context.Param("question"))
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.QuestionNotFound))
	case err != nil:
		return systemErrorResult("Failed to fetch question"), err
	}
	return ginx.Result{Data: newQuestion(q)}, nil
}

func (h *Handler) Create(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	var req CreateQuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidQuestion))
	}
	q, err := h.svc.Create(ctx, domain.Question{
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		Difficulty:      domain.Difficulty(req.Difficulty),
		CompanyId:       req.CompanyId,
		TopicId:         req.TopicId,
		TimeComplexity:  req.TimeComplexity,
		SpaceComplexity: req.SpaceComplexity,
		Hints:           req.Hints,
		TestCases:       req.TestCases,
	})
	switch {
	case mysqlx.IsConstraintViolation(err):
		h.logger.Warn("创建题目失败", elog.FieldErr(err),
			elog.Int64("companyId", req.CompanyId),
			elog.Int64("topicId", req.TopicId))
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidQuestion))
	case err != nil:
		return systemErrorResult("Failed to create question"), err
	}
	return resp.Created(ctx, newQuestion(q))
}

func (h *Handler) Solutions(ctx *ginx.Context) (ginx.Result, error) {
	q, err := h.svc.Resolve(ctx, ctx.Context.Param("question"))
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.QuestionNotFound))
	case err != nil:
		return systemErrorResult("Failed to fetch solutions"), err
	}
	solutions, err := h.solutionSvc.ListByQuestion(ctx, q.Id)
	if err != nil {
		return systemErrorResult("Failed to fetch solutions"), err
	}
	return ginx.Result{
		Data: slice.Map(solutions, func(idx int, src domain.Solution) Solution {
			return newSolution(src)
		}),
	}, nil
}

func (h *Handler) SolutionByLanguage(ctx *ginx.Context) (ginx.Result, error) {
	languageId, err := strconv.ParseInt(ctx.Context.Param("languageId"), 10, 64)
	if err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidSolution))
	}
	q, err := h.svc.Resolve(ctx, ctx.Context.Param("question"))
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.QuestionNotFound))
	case err != nil:
		return systemErrorResult("Failed to fetch solution"), err
	}
	s, err := h.solutionSvc.GetByLanguage(ctx, q.Id, languageId)
	switch {
	case errors.Is(err, service.ErrSolutionNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.SolutionNotFound))
	case err != nil:
		return systemErrorResult("Failed to fetch solution"), err
	}
	return ginx.Result{Data: newSolution(s)}, nil
}

func (h *Handler) CreateSolution(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	var req CreateSolutionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidSolution))
	}
	q, err := h.svc.Resolve(ctx, ctx.Context.Param("question"))
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return resp.Abort(ctx, http.StatusNotFound, result(errs.QuestionNotFound))
	case err != nil:
		return systemErrorResult("Failed to create solution"), err
	}
	s, err := h.solutionSvc.Create(ctx, domain.Solution{
		QuestionId:  q.Id,
		LanguageId:  req.LanguageId,
		Code:        req.Code,
		Explanation: req.Explanation,
		IsOptimal:   req.IsOptimal,
	})
	switch {
	case mysqlx.IsConstraintViolation(err):
		h.logger.Warn("创建题解失败", elog.FieldErr(err), elog.Int64("languageId", req.LanguageId))
		return resp.Abort(ctx, http.StatusBadRequest, result(errs.InvalidSolution))
	case err != nil:
		return systemErrorResult("Failed to create solution"), err
	}
	return resp.Created(ctx, newSolution(s))
}
