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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type QuestionDAO interface {
	Insert(ctx context.Context, q Question) (Question, error)
	FindById(ctx context.Context, id int64) (Question, error)
	FindBySlug(ctx context.Context, slug string) (Question, error)
	// List 按照创建时间倒序
	List(ctx context.Context, query *QuestionQuery) ([]Question, error)
}

// QuestionQuery 是若干等值条件的合取
type QuestionQuery struct {
	exprs []clause.Expression
}

func NewQuestionQuery() *QuestionQuery {
	return &QuestionQuery{}
}

func (q *QuestionQuery) Eq(column string, val any) *QuestionQuery {
	q.exprs = append(q.exprs, clause.Eq{Column: clause.Column{Name: column}, Value: val})
	return q
}

// EqIf 只有在 ok 为 true 的时候才加入条件
func (q *QuestionQuery) EqIf(ok bool, column string, val any) *QuestionQuery {
	if ok {
		return q.Eq(column, val)
	}
	return q
}

func (q *QuestionQuery) apply(db *gorm.DB) *gorm.DB {
	if q == nil || len(q.exprs) == 0 {
		return db
	}
	return db.Where(clause.And(q.exprs...))
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (d *GORMQuestionDAO) Insert(ctx context.Context, q Question) (Question, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := d.db.WithContext(ctx).Create(&q).Error
	return q, mysqlx.Translate(err)
}

func (d *GORMQuestionDAO) FindById(ctx context.Context, id int64) (Question, error) {
	var q Question
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	return q, err
}

func (d *GORMQuestionDAO) FindBySlug(ctx context.Context, slug string) (Question, error) {
	var q Question
	err := d.db.WithContext(ctx).Where("slug = ?", slug).First(&q).Error
	return q, err
}

func (d *GORMQuestionDAO) List(ctx context.Context, query *QuestionQuery) ([]Question, error) {
	var res []Question
	err := query.apply(d.db.WithContext(ctx)).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

type Question struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(512);not null"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text;not null"`
	Difficulty  string `gorm:"type:varchar(16);not null;index"`

	CompanyId sql.NullInt64 `gorm:"index"`
	Company   *companyRef   `gorm:"foreignKey:CompanyId;references:Id;constraint:OnDelete:SET NULL"`
	TopicId   sql.NullInt64 `gorm:"index"`
	Topic     *topicRef     `gorm:"foreignKey:TopicId;references:Id;constraint:OnDelete:SET NULL"`

	TimeComplexity  sql.NullString            `gorm:"type:varchar(64)"`
	SpaceComplexity sql.NullString            `gorm:"type:varchar(64)"`
	Hints           sqlx.JsonColumn[[]string] `gorm:"type:json"`

	// datatypes.JSON 无法处理 NULL，所以没有测试用例的时候存 []
	TestCases datatypes.JSON `gorm:"type:json;not null"`
	Ctime     int64
	Utime     int64
}

func (Question) TableName() string {
	return "questions"
}

// companyRef 和 topicRef 只用来声明外键，表结构由对应模块维护
type companyRef struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
}

func (companyRef) TableName() string {
	return "companies"
}

type topicRef struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
}

func (topicRef) TableName() string {
	return "topics"
}
