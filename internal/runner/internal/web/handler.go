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
	"github.com/hariprasad1114/codemaster/internal/question"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/service"
)

type Handler struct {
	runner service.Runner
	queSvc question.Service
	logger *elog.Component
}

func NewHandler(runner service.Runner, queSvc question.Service) *Handler {
	return &Handler{
		runner: runner,
		queSvc: queSvc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/code/run", ginx.S(h.Run))
}

// Run 执行代码。如果指定了 questionId，并且请求里面没有测试用例，就使用题目上的测试用例
func (h *Handler) Run(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	var req RunReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidInputResult)
	}
	runReq := domain.RunRequest{
		Code:      req.Code,
		Language:  req.Language,
		Stdin:     req.Stdin,
		TestCases: make([]domain.TestCase, 0, len(req.TestCases)),
	}
	for _, tc := range req.TestCases {
		runReq.TestCases = append(runReq.TestCases, domain.TestCase{
			Input:    tc.Input,
			Expected: tc.Expected,
		})
	}
	if req.QuestionId > 0 && len(runReq.TestCases) == 0 {
		que, err := h.queSvc.GetById(ctx, req.QuestionId)
		switch {
		case errors.Is(err, question.ErrQuestionNotFound):
			return resp.Abort(ctx, http.StatusNotFound, questionNotFoundResult)
		case err != nil:
			return systemErrorResult, err
		}
		runReq.TestCases, err = service.ParseTestCases(que.TestCases)
		if err != nil {
			// 题目数据有问题，按照没有测试用例处理
			h.logger.Warn("解析题目测试用例失败",
				elog.Int64("qid", que.Id),
				elog.FieldErr(err))
		}
	}
	res, err := h.runner.Run(ctx, runReq)
	switch {
	case errors.Is(err, service.ErrRunnerUnavailable):
		return resp.Abort(ctx, http.StatusNotImplemented, runnerUnavailableResult)
	case err != nil:
		return systemErrorResult, err
	}
	h.logger.Debug("执行代码",
		elog.Int64("uid", sess.Claims().Uid),
		elog.String("language", req.Language),
		elog.Any("success", res.Success))
	return ginx.Result{
		Data: newRunResult(res),
	}, nil
}
