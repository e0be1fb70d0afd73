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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/hariprasad1114/codemaster/internal/test"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/integration/startup"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TopicTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *TopicTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(test.WithSession(123))
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *TopicTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM `topics`").Error)
}

func (s *TopicTestSuite) TestCreate() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.CreateTopicReq
		wantCode int
		after    func(t *testing.T, topic web.Topic)
	}{
		{
			name: "创建主题",
			req: web.CreateTopicReq{
				Name:        "Dynamic Programming",
				Description: "optimal substructure",
			},
			wantCode: http.StatusCreated,
			after: func(t *testing.T, topic web.Topic) {
				assert.NotZero(t, topic.Id)
				assert.Equal(t, "dynamic-programming", topic.Slug)
				got, err := dao.NewGORMTopicDAO(s.db).FindBySlug(context.Background(), "dynamic-programming")
				require.NoError(t, err)
				assert.Equal(t, topic.Id, got.Id)
				assert.Equal(t, "optimal substructure", got.Description)
			},
		},
		{
			name: "slug 重复",
			before: func(t *testing.T) {
				_, err := dao.NewGORMTopicDAO(s.db).Insert(context.Background(), dao.Topic{
					Name: "Graphs",
					Slug: "graphs",
				})
				require.NoError(t, err)
			},
			req: web.CreateTopicReq{
				Name: "Graph Theory",
				Slug: "graphs",
			},
			wantCode: http.StatusBadRequest,
			after:    func(t *testing.T, topic web.Topic) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			if tc.before != nil {
				tc.before(t)
			}
			req, err := http.NewRequest(http.MethodPost, "/api/topics", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Topic]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan().Data)
		})
	}
}

func (s *TopicTestSuite) TestDetailAndList() {
	d := dao.NewGORMTopicDAO(s.db)
	for _, topic := range []dao.Topic{
		{Name: "Trees", Slug: "trees"},
		{Name: "Arrays", Slug: "arrays"},
	} {
		_, err := d.Insert(context.Background(), topic)
		require.NoError(s.T(), err)
	}

	req, err := http.NewRequest(http.MethodGet, "/api/topics/trees", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Topic]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), "Trees", recorder.MustScan().Data.Name)

	req, err = http.NewRequest(http.MethodGet, "/api/topics/unknown", nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.Topic]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusNotFound, recorder.Code)

	req, err = http.NewRequest(http.MethodGet, "/api/topics", nil)
	require.NoError(s.T(), err)
	listRecorder := test.NewJSONResponseRecorder[[]web.Topic]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(s.T(), http.StatusOK, listRecorder.Code)
	topics := listRecorder.MustScan().Data
	require.Len(s.T(), topics, 2)
	assert.Equal(s.T(), "arrays", topics[0].Slug)
	assert.Equal(s.T(), "trees", topics[1].Slug)
}

func TestTopic(t *testing.T) {
	suite.Run(t, new(TopicTestSuite))
}
