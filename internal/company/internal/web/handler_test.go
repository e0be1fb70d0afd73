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
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hariprasad1114/codemaster/internal/company/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/company/internal/service"
	companymocks "github.com/hariprasad1114/codemaster/internal/company/mocks"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.CompanyService
		body     string
		wantCode int
		wantResp test.Result[Company]
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().Create(gomock.Any(), domain.Company{
					Name:  "Google",
					Slug:  "google",
					Color: "#4285f4",
				}).Return(domain.Company{
					Id:    1,
					Name:  "Google",
					Slug:  "google",
					Color: "#4285f4",
					Ctime: 123,
					Utime: 123,
				}, nil)
				return svc
			},
			body:     `{"name":"Google","slug":"google","color":"#4285f4"}`,
			wantCode: http.StatusCreated,
			wantResp: test.Result[Company]{
				Data: Company{
					Id:        1,
					Name:      "Google",
					Slug:      "google",
					Color:     "#4285f4",
					CreatedAt: 123,
				},
			},
		},
		{
			name: "缺少颜色",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				return companymocks.NewMockCompanyService(ctrl)
			},
			body:     `{"name":"Google"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Company]{Code: 401002, Msg: "Invalid company data"},
		},
		{
			name: "slug 不合法",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				return companymocks.NewMockCompanyService(ctrl)
			},
			body:     `{"name":"Google","slug":"Not A Slug","color":"#4285f4"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Company]{Code: 401002, Msg: "Invalid company data"},
		},
		{
			name: "slug 冲突",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Company{}, fmt.Errorf("%w: mock", mysqlx.ErrDuplicateKey))
				return svc
			},
			body:     `{"name":"Google","color":"#4285f4"}`,
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[Company]{Code: 401002, Msg: "Invalid company data"},
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Company{}, errors.New("mock db error"))
				return svc
			},
			body:     `{"name":"Google","color":"#4285f4"}`,
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[Company]{Code: 501001, Msg: "Failed to create company"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			server.Use(test.WithSession(123))
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)

			req := httptest.NewRequest(http.MethodPost, "/api/companies", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[Company]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.CompanyService
		slug     string
		wantCode int
		wantResp test.Result[Company]
	}{
		{
			name: "找到了",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().GetBySlug(gomock.Any(), "google").Return(domain.Company{
					Id:    1,
					Name:  "Google",
					Slug:  "google",
					Color: "#4285f4",
					Ctime: 123,
				}, nil)
				return svc
			},
			slug:     "google",
			wantCode: http.StatusOK,
			wantResp: test.Result[Company]{
				Data: Company{Id: 1, Name: "Google", Slug: "google", Color: "#4285f4", CreatedAt: 123},
			},
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().GetBySlug(gomock.Any(), "nope").
					Return(domain.Company{}, service.ErrCompanyNotFound)
				return svc
			},
			slug:     "nope",
			wantCode: http.StatusNotFound,
			wantResp: test.Result[Company]{Code: 401003, Msg: "Company not found"},
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) service.CompanyService {
				svc := companymocks.NewMockCompanyService(ctrl)
				svc.EXPECT().GetBySlug(gomock.Any(), "google").
					Return(domain.Company{}, errors.New("mock db error"))
				return svc
			},
			slug:     "google",
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[Company]{Code: 501001, Msg: "Failed to fetch company"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req := httptest.NewRequest(http.MethodGet, "/api/companies/"+tc.slug, nil)
			recorder := test.NewJSONResponseRecorder[Company]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
