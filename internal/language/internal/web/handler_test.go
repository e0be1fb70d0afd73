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
	"github.com/hariprasad1114/codemaster/internal/language/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/language/internal/service"
	languagemocks "github.com/hariprasad1114/codemaster/internal/language/mocks"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Tutorials(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (service.LanguageService, service.TutorialService)
		path     string
		wantCode int
		wantResp test.Result[[]Tutorial]
	}{
		{
			name: "按照 slug 查询",
			mock: func(ctrl *gomock.Controller) (service.LanguageService, service.TutorialService) {
				svc := languagemocks.NewMockLanguageService(ctrl)
				tSvc := languagemocks.NewMockTutorialService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), "python").Return(domain.Language{Id: 1}, nil)
				tSvc.EXPECT().ListByLanguage(gomock.Any(), int64(1)).Return([]domain.Tutorial{
					{Id: 1, LanguageId: 1, Title: "Basics", Slug: "basics", Order: 0, Difficulty: domain.DifficultyBeginner},
					{Id: 2, LanguageId: 1, Title: "Generators", Slug: "generators", Order: 1, Difficulty: domain.DifficultyAdvanced},
				}, nil)
				return svc, tSvc
			},
			path:     "/api/languages/python/tutorials",
			wantCode: http.StatusOK,
			wantResp: test.Result[[]Tutorial]{
				Data: []Tutorial{
					{Id: 1, LanguageId: 1, Title: "Basics", Slug: "basics", Order: 0, Difficulty: "Beginner"},
					{Id: 2, LanguageId: 1, Title: "Generators", Slug: "generators", Order: 1, Difficulty: "Advanced"},
				},
			},
		},
		{
			name: "语言不存在",
			mock: func(ctrl *gomock.Controller) (service.LanguageService, service.TutorialService) {
				svc := languagemocks.NewMockLanguageService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), "99").Return(domain.Language{}, service.ErrLanguageNotFound)
				return svc, languagemocks.NewMockTutorialService(ctrl)
			},
			path:     "/api/languages/99/tutorials",
			wantCode: http.StatusNotFound,
			wantResp: test.Result[[]Tutorial]{Code: 402003, Msg: "Language not found"},
		},
		{
			name: "查询教程失败",
			mock: func(ctrl *gomock.Controller) (service.LanguageService, service.TutorialService) {
				svc := languagemocks.NewMockLanguageService(ctrl)
				tSvc := languagemocks.NewMockTutorialService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), "1").Return(domain.Language{Id: 1}, nil)
				tSvc.EXPECT().ListByLanguage(gomock.Any(), int64(1)).Return(nil, errors.New("mock db error"))
				return svc, tSvc
			},
			path:     "/api/languages/1/tutorials",
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[[]Tutorial]{Code: 502001, Msg: "Failed to fetch tutorials"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := test.NewJSONResponseRecorder[[]Tutorial]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_CreateTutorial(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (service.LanguageService, service.TutorialService)
		body     string
		wantCode int
		wantResp test.Result[Tutorial]
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) (service.LanguageService, service.TutorialService) {
				svc := languagemocks.NewMockLanguageService(ctrl)
				tSvc := languagemocks.NewMockTutorialService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), "go").Return(domain.Language{Id: 2, Slug: "go"}, nil)
				tSvc.EXPECT().Create(gomock.Any(), domain.Tutorial{
					LanguageId: 2,
					Title:      "Goroutines",
					Content:    "go func() {}()",
					Order:      3,
					Difficulty: domain.DifficultyIntermediate,
				}).Return(domain.Tutorial{
					Id:         7,
					LanguageId: 2,
					Title:      "Goroutines",
					Slug:       "goroutines",
					Content:    "go func() {}()",
					Order:      3,
					Difficulty: domain.DifficultyIntermediate,
					Ctime:      99,
				}, nil)
				return svc, tSvc
			},
			body:     `{"title":"Goroutines","content":"go func() {}()","order":3,"difficulty":"Intermediate"}`,
			wantCode: http.StatusCreated,
			wantResp: test.Result[Tutorial]{
				Data: Tutorial{
					Id:         7,
					LanguageId: 2,
					Title:      "Goroutines",
					Slug:       "goroutines",
					Content:    "go func() {}()",
					Order:      3,
					Difficulty: "Intermediate",
					CreatedAt:  99,
				},
			},
		},
		{
			name: "难度不合法",
			mock: func(ctrl *gomock.Controller) (service.LanguageService, service.TutorialService) {
				return languagemocks.NewMockLanguageService(ctrl), languagemocks.NewMockTutorialService(ctrl)
			},
			body:     `{"title":"Goroutines","content":"x","difficulty":"Expert"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Tutorial]{Code: 402004, Msg: "Invalid tutorial data"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(test.WithSession(1))
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodPost, "/api/languages/go/tutorials", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[Tutorial]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
