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
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hariprasad1114/codemaster/internal/test"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/service"
	topicmocks "github.com/hariprasad1114/codemaster/internal/topic/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := topicmocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any()).Return([]domain.Topic{
		{Id: 1, Name: "Arrays", Slug: "arrays", Ctime: 10},
		{Id: 2, Name: "Graphs", Slug: "graphs", Description: "BFS and DFS", Ctime: 20},
	}, nil)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	recorder := test.NewJSONResponseRecorder[[]Topic]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []Topic{
		{Id: 1, Name: "Arrays", Slug: "arrays", CreatedAt: 10},
		{Id: 2, Name: "Graphs", Slug: "graphs", Description: "BFS and DFS", CreatedAt: 20},
	}, recorder.MustScan().Data)
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		wantResp test.Result[Topic]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := topicmocks.NewMockService(ctrl)
				svc.EXPECT().GetBySlug(gomock.Any(), "graphs").
					Return(domain.Topic{Id: 2, Name: "Graphs", Slug: "graphs"}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Topic]{Data: Topic{Id: 2, Name: "Graphs", Slug: "graphs"}},
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := topicmocks.NewMockService(ctrl)
				svc.EXPECT().GetBySlug(gomock.Any(), "graphs").
					Return(domain.Topic{}, service.ErrTopicNotFound)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[Topic]{Code: 403003, Msg: "Topic not found"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)
			req := httptest.NewRequest(http.MethodGet, "/api/topics/graphs", nil)
			recorder := test.NewJSONResponseRecorder[Topic]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
