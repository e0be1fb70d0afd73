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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/hariprasad1114/codemaster/internal/question/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/question/internal/service"
	questionmocks "github.com/hariprasad1114/codemaster/internal/question/mocks"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_List(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.QuestionService
		query    string
		wantCode int
		wantResp test.Result[[]Question]
	}{
		{
			name: "组合条件",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				svc := questionmocks.NewMockQuestionService(ctrl)
				svc.EXPECT().List(gomock.Any(), domain.QuestionFilter{
					CompanyId:  1,
					Difficulty: domain.DifficultyEasy,
				}).Return([]domain.Question{
					{Id: 3, Title: "Two Sum", Slug: "two-sum", Difficulty: domain.DifficultyEasy, CompanyId: 1},
				}, nil)
				return svc
			},
			query:    "?companyId=1&difficulty=Easy",
			wantCode: http.StatusOK,
			wantResp: test.Result[[]Question]{
				Data: []Question{
					{Id: 3, Title: "Two Sum", Slug: "two-sum", Difficulty: "Easy", CompanyId: 1, Hints: []string{}},
				},
			},
		},
		{
			name: "没有条件",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				svc := questionmocks.NewMockQuestionService(ctrl)
				svc.EXPECT().List(gomock.Any(), domain.QuestionFilter{}).Return([]domain.Question{}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[[]Question]{Data: []Question{}},
		},
		{
			name: "难度不合法",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				return questionmocks.NewMockQuestionService(ctrl)
			},
			query:    "?difficulty=Impossible",
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]Question]{Code: 404006, Msg: "Invalid query parameters"},
		},
		{
			name: "公司 id 不是数字",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				return questionmocks.NewMockQuestionService(ctrl)
			},
			query:    "?companyId=google",
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]Question]{Code: 404006, Msg: "Invalid query parameters"},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				svc := questionmocks.NewMockQuestionService(ctrl)
				svc.EXPECT().List(gomock.Any(), domain.QuestionFilter{TopicId: 2}).
					Return(nil, errors.New("mock db error"))
				return svc
			},
			query:    "?topicId=2",
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[[]Question]{Code: 504001, Msg: "Failed to fetch questions"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl), questionmocks.NewMockSolutionService(ctrl)).PublicRoutes(server)
			req := httptest.NewRequest(http.MethodGet, "/api/questions"+tc.query, nil)
			recorder := test.NewJSONResponseRecorder[[]Question]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.QuestionService
		body     string
		wantCode int
		wantResp test.Result[Question]
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				svc := questionmocks.NewMockQuestionService(ctrl)
				svc.EXPECT().Create(gomock.Any(), domain.Question{
					Title:       "Two Sum",
					Description: "find two numbers",
					Difficulty:  domain.DifficultyMedium,
					CompanyId:   1,
					Hints:       []string{"use a hash map"},
					TestCases:   json.RawMessage(`[{"input":"1 2","expected":"3"}]`),
				}).Return(domain.Question{
					Id:          9,
					Title:       "Two Sum",
					Slug:        "two-sum",
					Description: "find two numbers",
					Difficulty:  domain.DifficultyMedium,
					CompanyId:   1,
					Hints:       []string{"use a hash map"},
					TestCases:   json.RawMessage(`[{"input":"1 2","expected":"3"}]`),
					Ctime:       100,
				}, nil)
				return svc
			},
			body:     `{"title":"Two Sum","description":"find two numbers","difficulty":"Medium","companyId":1,"hints":["use a hash map"],"testCases":[{"input":"1 2","expected":"3"}]}`,
			wantCode: http.StatusCreated,
			wantResp: test.Result[Question]{
				Data: Question{
					Id:          9,
					Title:       "Two Sum",
					Slug:        "two-sum",
					Description: "find two numbers",
					Difficulty:  "Medium",
					CompanyId:   1,
					Hints:       []string{"use a hash map"},
					TestCases:   json.RawMessage(`[{"input":"1 2","expected":"3"}]`),
					CreatedAt:   100,
				},
			},
		},
		{
			name: "难度不合法",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				return questionmocks.NewMockQuestionService(ctrl)
			},
			body:     `{"title":"Two Sum","description":"x","difficulty":"Trivial"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Question]{Code: 404002, Msg: "Invalid question data"},
		},
		{
			name: "公司不存在",
			mock: func(ctrl *gomock.Controller) service.QuestionService {
				svc := questionmocks.NewMockQuestionService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Question{}, mysqlx.ErrForeignKey)
				return svc
			},
			body:     `{"title":"Two Sum","description":"x","difficulty":"Easy","companyId":404}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Question]{Code: 404002, Msg: "Invalid question data"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(test.WithSession(1))
			NewHandler(tc.mock(ctrl), questionmocks.NewMockSolutionService(ctrl)).PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[Question]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_SolutionByLanguage(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (service.QuestionService, service.SolutionService)
		path     string
		wantCode int
		wantResp test.Result[Solution]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) (service.QuestionService, service.SolutionService) {
				svc := questionmocks.NewMockQuestionService(ctrl)
				solSvc := questionmocks.NewMockSolutionService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), "1").Return(domain.Question{Id: 1}, nil)
				solSvc.EXPECT().GetByLanguage(gomock.Any(), int64(1), int64(2)).Return(domain.Solution{
					Id: 5, QuestionId: 1, LanguageId: 2, Code: "print(1)", IsOptimal: true,
				}, nil)
				return svc, solSvc
			},
			path:     "/api/questions/1/solutions/2",
			wantCode: http.StatusOK,
			wantResp: test.Result[Solution]{
				Data: Solution{Id: 5, QuestionId: 1, LanguageId: 2, Code: "print(1)", IsOptimal: true},
			},
		},
		{
			name: "没有题解",
			mock: func(ctrl *gomock.Controller) (service.QuestionService, service.SolutionService) {
				svc := questionmocks.NewMockQuestionService(ctrl)
				solSvc := questionmocks.NewMockSolutionService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), "1").Return(domain.Question{Id: 1}, nil)
				solSvc.EXPECT().GetByLanguage(gomock.Any(), int64(1), int64(3)).
					Return(domain.Solution{}, service.ErrSolutionNotFound)
				return svc, solSvc
			},
			path:     "/api/questions/1/solutions/3",
			wantCode: http.StatusNotFound,
			wantResp: test.Result[Solution]{Code: 404005, Msg: "Solution not found"},
		},
		{
			name: "题目不存在",
			mock: func(ctrl *gomock.Controller) (service.QuestionService, service.SolutionService) {
				svc := questionmocks.NewMockQuestionService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), "999").Return(domain.Question{}, service.ErrQuestionNotFound)
				return svc, questionmocks.NewMockSolutionService(ctrl)
			},
			path:     "/api/questions/999/solutions/3",
			wantCode: http.StatusNotFound,
			wantResp: test.Result[Solution]{Code: 404003, Msg: "Question not found"},
		},
		{
			name: "语言 id 不合法",
			mock: func(ctrl *gomock.Controller) (service.QuestionService, service.SolutionService) {
				return questionmocks.NewMockQuestionService(ctrl), questionmocks.NewMockSolutionService(ctrl)
			},
			path:     "/api/questions/1/solutions/python",
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Solution]{Code: 404004, Msg: "Invalid solution data"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := test.NewJSONResponseRecorder[Solution]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
