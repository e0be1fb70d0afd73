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
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/integration/startup"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/web"
	"github.com/hariprasad1114/codemaster/internal/test"
	testioc "github.com/hariprasad1114/codemaster/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type ProgressTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	qid    int64
}

func (s *ProgressTestSuite) SetupSuite() {
	// 先建 questions 表
	_, err := startup.InitQuestionModule()
	require.NoError(s.T(), err)
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(test.WithSession(uid))
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *ProgressTestSuite) SetupTest() {
	err := s.db.Exec("INSERT INTO `questions` (`title`, `slug`, `description`, `difficulty`, `test_cases`, `ctime`, `utime`) VALUES ('Two Sum', 'two-sum', 'x', 'Easy', '[]', 1, 1)").Error
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.db.Raw("SELECT id FROM `questions` WHERE slug = 'two-sum'").Scan(&s.qid).Error)
}

func (s *ProgressTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM `user_progress`").Error)
	require.NoError(s.T(), s.db.Exec("DELETE FROM `questions`").Error)
}

func (s *ProgressTestSuite) save(qid int64, body map[string]any) test.JSONResponseRecorder[web.Progress] {
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("/api/user/progress/%d", qid), iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Progress]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *ProgressTestSuite) TestUpsert() {
	t := s.T()
	first := s.save(s.qid, map[string]any{
		"solved":        false,
		"attempts":      1,
		"lastAttemptAt": 1000,
	})
	require.Equal(t, http.StatusOK, first.Code)
	p1 := first.MustScan().Data
	assert.Equal(t, 1, p1.Attempts)
	assert.Equal(t, int64(1000), p1.LastAttemptAt)

	time.Sleep(5 * time.Millisecond)
	second := s.save(s.qid, map[string]any{
		"solved":   true,
		"attempts": 2,
		"bestTime": 4200,
	})
	require.Equal(t, http.StatusOK, second.Code)
	p2 := second.MustScan().Data
	assert.Equal(t, p1.Id, p2.Id)
	assert.True(t, p2.Solved)
	assert.Equal(t, 2, p2.Attempts)
	assert.Equal(t, int64(4200), p2.BestTime)
	// 没有传入的字段保持不变
	assert.Equal(t, int64(1000), p2.LastAttemptAt)
	assert.Greater(t, p2.UpdatedAt, p1.UpdatedAt)

	var cnt int64
	require.NoError(t, s.db.Raw("SELECT COUNT(*) FROM `user_progress` WHERE uid = ? AND qid = ?", uid, s.qid).Scan(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	req, err := http.NewRequest(http.MethodGet, "/api/user/progress", nil)
	require.NoError(t, err)
	listRecorder := test.NewJSONResponseRecorder[[]web.Progress]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(t, http.StatusOK, listRecorder.Code)
	list := listRecorder.MustScan().Data
	require.Len(t, list, 1)
	assert.Equal(t, s.qid, list[0].QuestionId)
}

func (s *ProgressTestSuite) TestDetail() {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/user/progress/%d", s.qid), nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[*web.Progress]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Nil(s.T(), recorder.MustScan().Data)

	require.Equal(s.T(), http.StatusOK, s.save(s.qid, map[string]any{"attempts": 1}).Code)
	recorder = test.NewJSONResponseRecorder[*web.Progress]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), 1, recorder.MustScan().Data.Attempts)
}

func (s *ProgressTestSuite) TestSave_QuestionMissing() {
	recorder := s.save(s.qid+1000, map[string]any{"attempts": 1})
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)
}

func TestProgress(t *testing.T) {
	suite.Run(t, new(ProgressTestSuite))
}
