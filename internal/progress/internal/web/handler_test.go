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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/service"
	progressmocks "github.com/hariprasad1114/codemaster/internal/progress/mocks"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const uid = 123

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		path     string
		wantCode int
		wantResp test.Result[*Progress]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := progressmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), int64(uid), int64(7)).Return(domain.Progress{
					Id: 1, Uid: uid, Qid: 7, Solved: true, Attempts: 2, BestTime: 830, Ctime: 10, Utime: 20,
				}, nil)
				return svc
			},
			path:     "/api/user/progress/7",
			wantCode: http.StatusOK,
			wantResp: test.Result[*Progress]{
				Data: &Progress{Id: 1, QuestionId: 7, Solved: true, Attempts: 2, BestTime: 830, CreatedAt: 10, UpdatedAt: 20},
			},
		},
		{
			name: "没有记录",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := progressmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), int64(uid), int64(8)).
					Return(domain.Progress{}, service.ErrProgressNotFound)
				return svc
			},
			path:     "/api/user/progress/8",
			wantCode: http.StatusOK,
			wantResp: test.Result[*Progress]{},
		},
		{
			name: "题目 id 不合法",
			mock: func(ctrl *gomock.Controller) service.Service {
				return progressmocks.NewMockService(ctrl)
			},
			path:     "/api/user/progress/two-sum",
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[*Progress]{Code: 405002, Msg: "Invalid progress data"},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := progressmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), int64(uid), int64(9)).
					Return(domain.Progress{}, errors.New("mock db error"))
				return svc
			},
			path:     "/api/user/progress/9",
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[*Progress]{Code: 505001, Msg: "Failed to fetch progress"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(test.WithSession(uid))
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := test.NewJSONResponseRecorder[*Progress]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Save(t *testing.T) {
	attempts := 3
	solved := true
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		path     string
		body     string
		wantCode int
		wantResp test.Result[Progress]
	}{
		{
			name: "只更新尝试次数",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := progressmocks.NewMockService(ctrl)
				svc.EXPECT().Save(gomock.Any(), int64(uid), int64(5), domain.ProgressUpdate{
					Attempts: &attempts,
				}).Return(domain.Progress{Id: 1, Uid: uid, Qid: 5, Attempts: 3, Utime: 99}, nil)
				return svc
			},
			path:     "/api/user/progress/5",
			body:     `{"attempts":3}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[Progress]{
				Data: Progress{Id: 1, QuestionId: 5, Attempts: 3, UpdatedAt: 99},
			},
		},
		{
			name: "用户 id 只来自会话",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := progressmocks.NewMockService(ctrl)
				svc.EXPECT().Save(gomock.Any(), int64(uid), int64(5), domain.ProgressUpdate{
					Solved: &solved,
				}).Return(domain.Progress{Id: 1, Uid: uid, Qid: 5, Solved: true}, nil)
				return svc
			},
			path:     "/api/user/progress/5",
			body:     `{"userId":999,"solved":true}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[Progress]{
				Data: Progress{Id: 1, QuestionId: 5, Solved: true},
			},
		},
		{
			name: "尝试次数为负数",
			mock: func(ctrl *gomock.Controller) service.Service {
				return progressmocks.NewMockService(ctrl)
			},
			path:     "/api/user/progress/5",
			body:     `{"attempts":-1}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Progress]{Code: 405002, Msg: "Invalid progress data"},
		},
		{
			name: "题目不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := progressmocks.NewMockService(ctrl)
				svc.EXPECT().Save(gomock.Any(), int64(uid), int64(404), gomock.Any()).
					Return(domain.Progress{}, mysqlx.ErrForeignKey)
				return svc
			},
			path:     "/api/user/progress/404",
			body:     `{"solved":false}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Progress]{Code: 405002, Msg: "Invalid progress data"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(test.WithSession(uid))
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[Progress]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
