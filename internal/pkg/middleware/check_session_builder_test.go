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

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/hariprasad1114/codemaster/internal/user"
	usermocks "github.com/hariprasad1114/codemaster/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckSessionMiddlewareBuilder(t *testing.T) {
	testCases := []struct {
		name     string
		before   gin.HandlerFunc
		mock     func(ctrl *gomock.Controller) user.SessionService
		wantCode int
	}{
		{
			name:   "会话有效",
			before: test.WithSession(2793),
			mock: func(ctrl *gomock.Controller) user.SessionService {
				svc := usermocks.NewMockSessionService(ctrl)
				svc.EXPECT().Check(gomock.Any(), test.SSID(2793)).
					Return(user.Session{Sid: test.SSID(2793), Uid: 2793}, nil)
				return svc
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "会话已过期",
			before: test.WithClaims(session.Claims{Uid: 2794, SSID: "ssid-2794"}),
			mock: func(ctrl *gomock.Controller) user.SessionService {
				svc := usermocks.NewMockSessionService(ctrl)
				svc.EXPECT().Check(gomock.Any(), "ssid-2794").
					Return(user.Session{}, user.ErrSessionExpired)
				return svc
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "未登录",
			before: func(ctx *gin.Context) {},
			mock: func(ctrl *gomock.Controller) user.SessionService {
				return usermocks.NewMockSessionService(ctrl)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "查询失败",
			before: test.WithSession(2795),
			mock: func(ctrl *gomock.Controller) user.SessionService {
				svc := usermocks.NewMockSessionService(ctrl)
				svc.EXPECT().Check(gomock.Any(), test.SSID(2795)).
					Return(user.Session{}, errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			builder := NewCheckSessionMiddlewareBuilder(tc.mock(ctrl))
			builder.sp = &test.SessionProvider{}

			server := gin.New()
			server.Use(tc.before, builder.Build())
			server.GET("/api/user/progress", func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/api/user/progress", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
