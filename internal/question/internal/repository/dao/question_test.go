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

package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMQuestionDAO_List(t *testing.T) {
	testCases := []struct {
		name    string
		query   *QuestionQuery
		mock    func(t *testing.T) *sql.DB
		wantIds []int64
		wantErr error
	}{
		{
			name:  "没有条件",
			query: NewQuestionQuery(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "slug"}).
					AddRow(2, "three-sum").
					AddRow(1, "two-sum")
				mock.ExpectQuery("^SELECT \\* FROM `questions` ORDER BY ctime DESC, id DESC$").
					WillReturnRows(rows)
				return mockDB
			},
			wantIds: []int64{2, 1},
		},
		{
			name: "公司和难度",
			query: NewQuestionQuery().
				EqIf(true, "company_id", int64(3)).
				EqIf(false, "topic_id", int64(0)).
				EqIf(true, "difficulty", "Easy"),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "slug"}).AddRow(5, "valid-parentheses")
				mock.ExpectQuery("SELECT \\* FROM `questions` WHERE .*`company_id` = \\? AND `difficulty` = \\?.* ORDER BY ctime DESC, id DESC").
					WithArgs(int64(3), "Easy").
					WillReturnRows(rows)
				return mockDB
			},
			wantIds: []int64{5},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMQuestionDAO(openDB(t, tc.mock(t)))
			res, err := d.List(context.Background(), tc.query)
			assert.Equal(t, tc.wantErr, err)
			ids := make([]int64, 0, len(res))
			for _, q := range res {
				ids = append(ids, q.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}

func TestGORMQuestionDAO_Insert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "公司不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `questions` .*").
					WillReturnError(&mysql.MySQLError{Number: 1452})
				return mockDB
			},
			wantErr: mysqlx.ErrForeignKey,
		},
		{
			name: "slug 冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `questions` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: mysqlx.ErrDuplicateKey,
		},
		{
			name: "插入成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `questions` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMQuestionDAO(openDB(t, tc.mock(t)))
			q, err := d.Insert(context.Background(), Question{
				Title:      "Two Sum",
				Slug:       "two-sum",
				Difficulty: "Easy",
				CompanyId:  sql.NullInt64{Int64: 99, Valid: true},
			})
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, int64(7), q.Id)
			assert.NotZero(t, q.Ctime)
		})
	}
}

func openDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
