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
	"github.com/hariprasad1114/codemaster/internal/question"
	questionmocks "github.com/hariprasad1114/codemaster/internal/question/mocks"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/service"
	runnermocks "github.com/hariprasad1114/codemaster/internal/runner/mocks"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const uid = 123

func TestHandler_Run(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (service.Runner, question.Service)
		body     string
		wantCode int
		wantResp test.Result[RunResult]
	}{
		{
			name: "使用请求里的测试用例",
			mock: func(ctrl *gomock.Controller) (service.Runner, question.Service) {
				runner := runnermocks.NewMockRunner(ctrl)
				runner.EXPECT().Run(gomock.Any(), domain.RunRequest{
					Code:      "print(input())",
					Language:  "python",
					Stdin:     "hi",
					TestCases: []domain.TestCase{{Input: "1", Expected: "1"}},
				}).Return(domain.RunResult{
					Success: true,
					Output:  "hi",
					TestResults: []domain.TestResult{
						{Input: "1", Expected: "1", Actual: "1", Passed: true, ExecutionTimeMs: 4},
					},
				}, nil)
				return runner, questionmocks.NewMockQuestionService(ctrl)
			},
			body:     `{"code":"print(input())","language":"python","stdin":"hi","questionId":1,"testCases":[{"input":"1","expected":"1"}]}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[RunResult]{
				Data: RunResult{
					Success: true,
					Output:  "hi",
					TestResults: []TestResult{
						{Input: "1", Expected: "1", Actual: "1", Passed: true, ExecutionTimeMs: 4},
					},
				},
			},
		},
		{
			name: "使用题目的测试用例",
			mock: func(ctrl *gomock.Controller) (service.Runner, question.Service) {
				queSvc := questionmocks.NewMockQuestionService(ctrl)
				queSvc.EXPECT().GetById(gomock.Any(), int64(1)).Return(question.Question{
					Id:        1,
					TestCases: json.RawMessage(`[{"input":"2","expected":"4"}]`),
				}, nil)
				runner := runnermocks.NewMockRunner(ctrl)
				runner.EXPECT().Run(gomock.Any(), domain.RunRequest{
					Code:      "print(int(input())*2)",
					Language:  "python",
					TestCases: []domain.TestCase{{Input: "2", Expected: "4"}},
				}).Return(domain.RunResult{
					Success: true,
					TestResults: []domain.TestResult{
						{Input: "2", Expected: "4", Actual: "4", Passed: true, ExecutionTimeMs: 2},
					},
				}, nil)
				return runner, queSvc
			},
			body:     `{"code":"print(int(input())*2)","language":"python","questionId":1}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[RunResult]{
				Data: RunResult{
					Success: true,
					TestResults: []TestResult{
						{Input: "2", Expected: "4", Actual: "4", Passed: true, ExecutionTimeMs: 2},
					},
				},
			},
		},
		{
			name: "缺少 code",
			mock: func(ctrl *gomock.Controller) (service.Runner, question.Service) {
				return runnermocks.NewMockRunner(ctrl), questionmocks.NewMockQuestionService(ctrl)
			},
			body:     `{"language":"python"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[RunResult]{Code: 408002, Msg: "Invalid run request"},
		},
		{
			name: "题目不存在",
			mock: func(ctrl *gomock.Controller) (service.Runner, question.Service) {
				queSvc := questionmocks.NewMockQuestionService(ctrl)
				queSvc.EXPECT().GetById(gomock.Any(), int64(2)).
					Return(question.Question{}, question.ErrQuestionNotFound)
				return runnermocks.NewMockRunner(ctrl), queSvc
			},
			body:     `{"code":"x","language":"python","questionId":2}`,
			wantCode: http.StatusNotFound,
			wantResp: test.Result[RunResult]{Code: 408003, Msg: "Question not found"},
		},
		{
			name: "没有配置执行服务",
			mock: func(ctrl *gomock.Controller) (service.Runner, question.Service) {
				return service.UnavailableRunner{}, questionmocks.NewMockQuestionService(ctrl)
			},
			body:     `{"code":"x","language":"python"}`,
			wantCode: http.StatusNotImplemented,
			wantResp: test.Result[RunResult]{Code: 408004, Msg: "Code execution is not available"},
		},
		{
			name: "执行服务出错",
			mock: func(ctrl *gomock.Controller) (service.Runner, question.Service) {
				runner := runnermocks.NewMockRunner(ctrl)
				runner.EXPECT().Run(gomock.Any(), gomock.Any()).
					Return(domain.RunResult{}, errors.New("executor timeout"))
				return runner, questionmocks.NewMockQuestionService(ctrl)
			},
			body:     `{"code":"x","language":"python"}`,
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[RunResult]{Code: 508001, Msg: "Failed to run code"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(test.WithSession(uid))
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodPost, "/api/code/run", strings.NewReader(tc.body))
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[RunResult]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
