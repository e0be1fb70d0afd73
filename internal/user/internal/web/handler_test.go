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
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/user/internal/service"
	svcmocks "github.com/hariprasad1114/codemaster/internal/user/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const uid = 7

type mocks struct {
	oauth2Svc  *svcmocks.MockOAuth2Service
	userSvc    *svcmocks.MockUserService
	sessionSvc *svcmocks.MockSessionService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		oauth2Svc:  svcmocks.NewMockOAuth2Service(ctrl),
		userSvc:    svcmocks.NewMockUserService(ctrl),
		sessionSvc: svcmocks.NewMockSessionService(ctrl),
	}
}

func (m mocks) handler() *Handler {
	return NewHandler(m.oauth2Svc, m.userSvc, m.sessionSvc)
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.sessionSvc.EXPECT().NewState(gomock.Any()).Return("state-1", nil)
	m.oauth2Svc.EXPECT().AuthURL("state-1").Return("https://idp.example.com/authorize?state=state-1")

	server := gin.New()
	m.handler().PublicRoutes(server)
	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "https://idp.example.com/authorize?state=state-1", recorder.Header().Get("Location"))
}

func TestHandler_Callback(t *testing.T) {
	testCases := []struct {
		name         string
		mock         func(m mocks)
		query        string
		wantCode     int
		wantLocation string
	}{
		{
			name: "登录成功",
			mock: func(m mocks) {
				m.sessionSvc.EXPECT().VerifyState(gomock.Any(), "s1").Return(nil)
				m.oauth2Svc.EXPECT().VerifyCode(gomock.Any(), "c1").Return(domain.OIDCInfo{Sub: "sub-1"}, nil)
				m.userSvc.EXPECT().Upsert(gomock.Any(), domain.OIDCInfo{Sub: "sub-1"}).
					Return(domain.User{Id: uid, Sub: "sub-1"}, nil)
				m.sessionSvc.EXPECT().Record(gomock.Any(), test.SSID(uid), int64(uid),
					map[string]string{"sub": "sub-1"}).Return(nil)
			},
			query:        "?code=c1&state=s1",
			wantCode:     http.StatusFound,
			wantLocation: "/",
		},
		{
			name:     "缺少 code",
			mock:     func(m mocks) {},
			query:    "?state=s1",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "state 不合法",
			mock: func(m mocks) {
				m.sessionSvc.EXPECT().VerifyState(gomock.Any(), "s1").Return(service.ErrInvalidState)
			},
			query:    "?code=c1&state=s1",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "code 校验失败",
			mock: func(m mocks) {
				m.sessionSvc.EXPECT().VerifyState(gomock.Any(), "s1").Return(nil)
				m.oauth2Svc.EXPECT().VerifyCode(gomock.Any(), "c1").
					Return(domain.OIDCInfo{}, errors.New("invalid_grant"))
			},
			query:    "?code=c1&state=s1",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "保存用户失败",
			mock: func(m mocks) {
				m.sessionSvc.EXPECT().VerifyState(gomock.Any(), "s1").Return(nil)
				m.oauth2Svc.EXPECT().VerifyCode(gomock.Any(), "c1").Return(domain.OIDCInfo{Sub: "sub-1"}, nil)
				m.userSvc.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					Return(domain.User{}, errors.New("mock db error"))
			},
			query:    "?code=c1&state=s1",
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)

			server := gin.New()
			m.handler().PublicRoutes(server)
			req := httptest.NewRequest(http.MethodGet, "/api/callback"+tc.query, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.sessionSvc.EXPECT().Remove(gomock.Any(), test.SSID(uid)).Return(nil)

	server := gin.New()
	server.Use(test.WithSession(uid))
	m.handler().PrivateRoutes(server)
	req := httptest.NewRequest(http.MethodGet, "/api/logout", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
}

func TestHandler_Profile(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m mocks)
		wantCode int
		wantResp test.Result[User]
	}{
		{
			name: "查询成功",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(uid)).Return(domain.User{
					Id:              uid,
					Sub:             "sub-1",
					Email:           "a@example.com",
					FirstName:       "Ada",
					LastName:        "Lovelace",
					ProfileImageURL: "https://example.com/a.png",
					Ctime:           10,
					Utime:           20,
				}, nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[User]{
				Data: User{
					Id:              uid,
					Email:           "a@example.com",
					FirstName:       "Ada",
					LastName:        "Lovelace",
					ProfileImageURL: "https://example.com/a.png",
					CreatedAt:       10,
					UpdatedAt:       20,
				},
			},
		},
		{
			name: "用户不存在",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(uid)).Return(domain.User{}, service.ErrUserNotFound)
			},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[User]{Code: 406003, Msg: "User not found"},
		},
		{
			name: "查询失败",
			mock: func(m mocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(uid)).Return(domain.User{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[User]{Code: 506001, Msg: "系统错误"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)

			server := gin.New()
			server.Use(test.WithSession(uid))
			m.handler().PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
			recorder := test.NewJSONResponseRecorder[User]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
