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
	"github.com/hariprasad1114/codemaster/internal/language/internal/integration/startup"
	"github.com/hariprasad1114/codemaster/internal/language/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/language/internal/web"
	"github.com/hariprasad1114/codemaster/internal/test"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LanguageTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.LanguageDAO
}

func (s *LanguageTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(test.WithSession(123))
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMLanguageDAO(s.db)
}

func (s *LanguageTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM `language_tutorials`").Error)
	require.NoError(s.T(), s.db.Exec("DELETE FROM `programming_languages`").Error)
}

func (s *LanguageTestSuite) insertLanguage(slug string) dao.Language {
	l, err := s.dao.Insert(context.Background(), dao.Language{
		Name:            slug,
		Slug:            slug,
		Icon:            "icon-" + slug,
		Color:           "#3776ab",
		SyntaxHighlight: slug,
	})
	require.NoError(s.T(), err)
	return l
}

func (s *LanguageTestSuite) TestCreate() {
	req, err := http.NewRequest(http.MethodPost, "/api/languages", iox.NewJSONReader(web.CreateLanguageReq{
		Name:            "Python",
		Icon:            "python",
		Color:           "#3776ab",
		SyntaxHighlight: "python",
	}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Language]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusCreated, recorder.Code)
	l := recorder.MustScan().Data
	assert.Equal(s.T(), "python", l.Slug)

	got, err := s.dao.FindById(context.Background(), l.Id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Python", got.Name)

	// 缺少必填字段
	req, err = http.NewRequest(http.MethodPost, "/api/languages", iox.NewJSONReader(web.CreateLanguageReq{
		Name: "Rust",
	}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Language]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)
}

func (s *LanguageTestSuite) TestTutorials() {
	l := s.insertLanguage("go")
	for _, t := range []dao.Tutorial{
		{LanguageId: l.Id, Title: "Channels", Slug: "channels", Content: "c", SortOrder: 2, Difficulty: "Intermediate"},
		{LanguageId: l.Id, Title: "Hello", Slug: "hello", Content: "h", SortOrder: 0, Difficulty: "Beginner"},
		{LanguageId: l.Id, Title: "Generics", Slug: "generics", Content: "g", SortOrder: 5, Difficulty: "Advanced"},
	} {
		_, err := s.dao.InsertTutorial(context.Background(), t)
		require.NoError(s.T(), err)
	}

	testCases := []struct {
		name      string
		path      string
		wantCode  int
		wantSlugs []string
	}{
		{
			name:      "按照 slug",
			path:      "/api/languages/go/tutorials",
			wantCode:  http.StatusOK,
			wantSlugs: []string{"hello", "channels", "generics"},
		},
		{
			name:     "语言不存在",
			path:     "/api/languages/cobol/tutorials",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "id 不存在",
			path:     "/api/languages/987654/tutorials",
			wantCode: http.StatusNotFound,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[[]web.Tutorial]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			var slugs []string
			for _, tu := range recorder.MustScan().Data {
				slugs = append(slugs, tu.Slug)
			}
			assert.Equal(t, tc.wantSlugs, slugs)
		})
	}
}

func (s *LanguageTestSuite) TestTutorialDetail() {
	goLang := s.insertLanguage("go")
	py := s.insertLanguage("python")
	for _, t := range []dao.Tutorial{
		{LanguageId: goLang.Id, Title: "Basics", Slug: "basics", Content: "go basics", Difficulty: "Beginner"},
		{LanguageId: py.Id, Title: "Basics", Slug: "basics", Content: "python basics", Difficulty: "Beginner"},
	} {
		_, err := s.dao.InsertTutorial(context.Background(), t)
		require.NoError(s.T(), err)
	}

	req, err := http.NewRequest(http.MethodGet, "/api/languages/python/tutorials/basics", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Tutorial]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), "python basics", recorder.MustScan().Data.Content)

	req, err = http.NewRequest(http.MethodGet, "/api/languages/go/tutorials/missing", nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.Tutorial]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusNotFound, recorder.Code)
}

func (s *LanguageTestSuite) TestCreateTutorial() {
	l := s.insertLanguage("java")
	body := web.CreateTutorialReq{
		Title:      "Streams API",
		Content:    "list.stream()",
		Order:      1,
		Difficulty: "Advanced",
	}
	req, err := http.NewRequest(http.MethodPost, "/api/languages/java/tutorials", iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Tutorial]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusCreated, recorder.Code)
	tu := recorder.MustScan().Data
	assert.Equal(s.T(), l.Id, tu.LanguageId)
	assert.Equal(s.T(), "streams-api", tu.Slug)

	// 同一个语言下 slug 重复
	req, err = http.NewRequest(http.MethodPost, "/api/languages/java/tutorials", iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Tutorial]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)
}

func TestLanguage(t *testing.T) {
	suite.Run(t, new(LanguageTestSuite))
}
