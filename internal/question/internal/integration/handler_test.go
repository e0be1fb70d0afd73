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
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/hariprasad1114/codemaster/internal/question/internal/integration/startup"
	"github.com/hariprasad1114/codemaster/internal/question/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/question/internal/web"
	"github.com/hariprasad1114/codemaster/internal/test"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type company struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type QuestionTestSuite struct {
	suite.Suite
	server      *egin.Component
	db          *egorm.Component
	questionDAO dao.QuestionDAO
}

func (s *QuestionTestSuite) SetupSuite() {
	modules, err := startup.InitModules()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	modules.Company.Hdl.PublicRoutes(server.Engine)
	modules.Question.Hdl.PublicRoutes(server.Engine)
	server.Use(test.WithSession(123))
	modules.Company.Hdl.PrivateRoutes(server.Engine)
	modules.Question.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.questionDAO = dao.NewGORMQuestionDAO(s.db)
}

func (s *QuestionTestSuite) TearDownTest() {
	for _, table := range []string{"solutions", "questions", "programming_languages", "topics", "companies"} {
		require.NoError(s.T(), s.db.Exec(fmt.Sprintf("DELETE FROM `%s`", table)).Error)
	}
}

func (s *QuestionTestSuite) insertCompany(slug string) int64 {
	res := s.db.Exec("INSERT INTO `companies` (`name`, `slug`, `color`, `ctime`, `utime`) VALUES (?, ?, '#000000', 1, 1)", slug, slug)
	require.NoError(s.T(), res.Error)
	var id int64
	require.NoError(s.T(), s.db.Raw("SELECT id FROM `companies` WHERE slug = ?", slug).Scan(&id).Error)
	return id
}

func (s *QuestionTestSuite) insertTopic(slug string) int64 {
	res := s.db.Exec("INSERT INTO `topics` (`name`, `slug`, `ctime`, `utime`) VALUES (?, ?, 1, 1)", slug, slug)
	require.NoError(s.T(), res.Error)
	var id int64
	require.NoError(s.T(), s.db.Raw("SELECT id FROM `topics` WHERE slug = ?", slug).Scan(&id).Error)
	return id
}

func (s *QuestionTestSuite) insertLanguage(slug string) int64 {
	res := s.db.Exec("INSERT INTO `programming_languages` (`name`, `slug`, `icon`, `color`, `syntax_highlight`, `ctime`, `utime`) VALUES (?, ?, ?, '#000000', ?, 1, 1)",
		slug, slug, slug, slug)
	require.NoError(s.T(), res.Error)
	var id int64
	require.NoError(s.T(), s.db.Raw("SELECT id FROM `programming_languages` WHERE slug = ?", slug).Scan(&id).Error)
	return id
}

// TestCompanyScenario 创建公司，然后创建关联该公司的题目，最后按照公司过滤
func (s *QuestionTestSuite) TestCompanyScenario() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/api/companies", iox.NewJSONReader(map[string]any{
		"name":  "Google",
		"slug":  "google",
		"color": "#4285f4",
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	companyRecorder := test.NewJSONResponseRecorder[company]()
	s.server.ServeHTTP(companyRecorder, req)
	require.Equal(t, http.StatusCreated, companyRecorder.Code)
	created := companyRecorder.MustScan().Data
	require.NotZero(t, created.Id)

	req, err = http.NewRequest(http.MethodGet, "/api/companies/google", nil)
	require.NoError(t, err)
	companyRecorder = test.NewJSONResponseRecorder[company]()
	s.server.ServeHTTP(companyRecorder, req)
	require.Equal(t, http.StatusOK, companyRecorder.Code)
	assert.Equal(t, created, companyRecorder.MustScan().Data)

	// 干扰数据
	_, err = s.questionDAO.Insert(context.Background(), dao.Question{
		Title:       "Unrelated",
		Slug:        "unrelated",
		Description: "x",
		Difficulty:  "Medium",
		TestCases:   []byte("[]"),
	})
	require.NoError(t, err)

	req, err = http.NewRequest(http.MethodPost, "/api/questions", iox.NewJSONReader(web.CreateQuestionReq{
		Title:       "Two Sum",
		Description: "Find two numbers adding up to target",
		Difficulty:  "Medium",
		CompanyId:   created.Id,
		Hints:       []string{"hash map"},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	questionRecorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(questionRecorder, req)
	require.Equal(t, http.StatusCreated, questionRecorder.Code)
	q := questionRecorder.MustScan().Data
	assert.Equal(t, "two-sum", q.Slug)
	assert.NotZero(t, q.CreatedAt)

	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/api/questions?companyId=%d", created.Id), nil)
	require.NoError(t, err)
	listRecorder := test.NewJSONResponseRecorder[[]web.Question]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(t, http.StatusOK, listRecorder.Code)
	questions := listRecorder.MustScan().Data
	require.Len(t, questions, 1)
	assert.Equal(t, q.Id, questions[0].Id)
	assert.Equal(t, []string{"hash map"}, questions[0].Hints)
}

func (s *QuestionTestSuite) TestList() {
	google := s.insertCompany("google")
	meta := s.insertCompany("meta")
	arrays := s.insertTopic("arrays")
	for _, q := range []dao.Question{
		{Title: "A", Slug: "a", Difficulty: "Easy", CompanyId: sql.NullInt64{Int64: google, Valid: true}, TopicId: sql.NullInt64{Int64: arrays, Valid: true}},
		{Title: "B", Slug: "b", Difficulty: "Hard", CompanyId: sql.NullInt64{Int64: google, Valid: true}},
		{Title: "C", Slug: "c", Difficulty: "Easy", CompanyId: sql.NullInt64{Int64: meta, Valid: true}},
		{Title: "D", Slug: "d", Difficulty: "Easy"},
	} {
		q.TestCases = []byte("[]")
		_, err := s.questionDAO.Insert(context.Background(), q)
		require.NoError(s.T(), err)
	}

	testCases := []struct {
		name      string
		query     string
		wantCode  int
		wantSlugs []string
	}{
		{
			name:      "全部",
			wantCode:  http.StatusOK,
			wantSlugs: []string{"a", "b", "c", "d"},
		},
		{
			name:      "难度",
			query:     "?difficulty=Easy",
			wantCode:  http.StatusOK,
			wantSlugs: []string{"a", "c", "d"},
		},
		{
			name:      "公司和难度",
			query:     fmt.Sprintf("?companyId=%d&difficulty=Easy", google),
			wantCode:  http.StatusOK,
			wantSlugs: []string{"a"},
		},
		{
			name:      "主题",
			query:     fmt.Sprintf("?topicId=%d", arrays),
			wantCode:  http.StatusOK,
			wantSlugs: []string{"a"},
		},
		{
			name:      "没有结果",
			query:     fmt.Sprintf("?companyId=%d&difficulty=Hard", meta),
			wantCode:  http.StatusOK,
			wantSlugs: []string{},
		},
		{
			name:     "非法难度",
			query:    "?difficulty=easy",
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/questions"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[[]web.Question]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			slugs := make([]string, 0)
			for _, q := range recorder.MustScan().Data {
				slugs = append(slugs, q.Slug)
			}
			assert.ElementsMatch(t, tc.wantSlugs, slugs)
		})
	}
}

func (s *QuestionTestSuite) TestCreate_MissingForeignKey() {
	req, err := http.NewRequest(http.MethodPost, "/api/questions", iox.NewJSONReader(web.CreateQuestionReq{
		Title:       "Orphan",
		Description: "x",
		Difficulty:  "Easy",
		TopicId:     987654,
	}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)
}

func (s *QuestionTestSuite) TestSolutions() {
	python := s.insertLanguage("python")
	golang := s.insertLanguage("go")
	q, err := s.questionDAO.Insert(context.Background(), dao.Question{
		Title:       "Reverse String",
		Slug:        "reverse-string",
		Description: "x",
		Difficulty:  "Easy",
		TestCases:   []byte(`[{"input":"abc","expected":"cba"}]`),
	})
	require.NoError(s.T(), err)

	for _, body := range []web.CreateSolutionReq{
		{LanguageId: golang, Code: "func reverse() {}", IsOptimal: true},
		{LanguageId: python, Code: "s[::-1]", Explanation: "slicing", IsOptimal: true},
	} {
		req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/questions/%d/solutions", q.Id), iox.NewJSONReader(body))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Solution]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), http.StatusCreated, recorder.Code)
		assert.Equal(s.T(), q.Id, recorder.MustScan().Data.QuestionId)
	}

	// 语言不存在
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/questions/%d/solutions", q.Id),
		iox.NewJSONReader(web.CreateSolutionReq{LanguageId: 987654, Code: "x"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Solution]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)

	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/api/questions/%d/solutions", q.Id), nil)
	require.NoError(s.T(), err)
	listRecorder := test.NewJSONResponseRecorder[[]web.Solution]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(s.T(), http.StatusOK, listRecorder.Code)
	solutions := listRecorder.MustScan().Data
	require.Len(s.T(), solutions, 2)
	// 按照语言 id 升序
	assert.Equal(s.T(), python, solutions[0].LanguageId)
	assert.Equal(s.T(), "slicing", solutions[0].Explanation)
	assert.Equal(s.T(), golang, solutions[1].LanguageId)

	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/api/questions/reverse-string/solutions/%d", golang), nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.Solution]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), "func reverse() {}", recorder.MustScan().Data.Code)

	req, err = http.NewRequest(http.MethodGet, "/api/questions/reverse-string", nil)
	require.NoError(s.T(), err)
	detailRecorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(s.T(), http.StatusOK, detailRecorder.Code)
	assert.JSONEq(s.T(), `[{"input":"abc","expected":"cba"}]`, string(detailRecorder.MustScan().Data.TestCases))
}

func TestQuestion(t *testing.T) {
	suite.Run(t, new(QuestionTestSuite))
}
