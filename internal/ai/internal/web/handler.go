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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service"
	"github.com/hariprasad1114/codemaster/internal/pkg/resp"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/ai")
	g.POST("/explain-code", ginx.S(h.ExplainCode))
	g.POST("/visualize-algorithm", ginx.S(h.VisualizeAlgorithm))
	g.POST("/generate-hints", ginx.S(h.GenerateHints))
}

func (h *Handler) ExplainCode(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	var req ExplainCodeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidInputResult("Code and language are required"))
	}
	res, err := h.svc.ExplainCode(ctx, sess.Claims().Uid, req.Code, req.Language)
	if err != nil {
		return systemErrorResult("Failed to explain code"), err
	}
	return ginx.Result{
		Data: newCodeExplanation(res),
	}, nil
}

func (h *Handler) VisualizeAlgorithm(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	var req VisualizeAlgorithmReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidInputResult("Algorithm and problem description are required"))
	}
	res, err := h.svc.GenerateAlgorithmVisualization(ctx, sess.Claims().Uid, req.Algorithm, req.ProblemDescription)
	if err != nil {
		return systemErrorResult("Failed to generate visualization"), err
	}
	return ginx.Result{
		Data: newAlgorithmVisualization(res),
	}, nil
}

func (h *Handler) GenerateHints(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	var req GenerateHintsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest,
			invalidInputResult("Problem title, description, and difficulty are required"))
	}
	hints, err := h.svc.GenerateProblemHints(ctx, sess.Claims().Uid,
		req.ProblemTitle, req.ProblemDescription, req.Difficulty)
	if err != nil {
		return systemErrorResult("Failed to generate hints"), err
	}
	return ginx.Result{
		Data: Hints{Hints: hints},
	}, nil
}
