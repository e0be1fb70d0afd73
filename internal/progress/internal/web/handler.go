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
	"github.com/hariprasad1114/codemaster/internal/progress/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/errs"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/service"
)

var invalidProgressResult = ginx.Result{
	Code: errs.InvalidProgress.Code,
	Msg:  errs.InvalidProgress.Msg,
}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/user/progress")
	g.GET("", ginx.S(h.List))
	g.GET("/:questionId", ginx.S(h.Detail))
	g.PUT("/:questionId", ginx.S(h.Save))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	progress, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return ginx.Result{Code: errs.SystemError.Code, Msg: "Failed to fetch progress"}, err
	}
	return ginx.Result{
		Data: slice.Map(progress, func(idx int, src domain.Progress) Progress {
			return newProgress(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	qid, err := strconv.ParseInt(ctx.Context.Param("questionId"), 10, 64)
	if err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidProgressResult)
	}
	p, err := h.svc.Get(ctx, sess.Claims().Uid, qid)
	switch {
	case errors.Is(err, service.ErrProgressNotFound):
		// 没有做过这道题不是错误
		return ginx.Result{}, nil
	case err != nil:
		return ginx.Result{Code: errs.SystemError.Code, Msg: "Failed to fetch progress"}, err
	}
	return ginx.Result{Data: newProgress(p)}, nil
}

func (h *Handler) Save(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	qid, err := strconv.ParseInt(ctx.Context.Param("questionId"), 10, 64)
	if err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidProgressResult)
	}
	var req SaveProgressReq
	if err = ctx.ShouldBindJSON(&req); err != nil {
		return resp.Abort(ctx, http.StatusBadRequest, invalidProgressResult)
	}
	uid := sess.Claims().Uid
	p, err := h.svc.Save(ctx, uid, qid, domain.ProgressUpdate{
		Solved:        req.Solved,
		Attempts:      req.Attempts,
		LastAttemptAt: req.LastAttemptAt,
		BestTime:      req.BestTime,
	})
	switch {
	case mysqlx.IsConstraintViolation(err):
		h.logger.Warn("保存进度失败", elog.FieldErr(err), elog.Int64("uid", uid), elog.Int64("qid", qid))
		return resp.Abort(ctx, http.StatusBadRequest, invalidProgressResult)
	case err != nil:
		return ginx.Result{Code: errs.SystemError.Code, Msg: "Failed to update progress"}, err
	}
	return ginx.Result{Data: newProgress(p)}, nil
}
