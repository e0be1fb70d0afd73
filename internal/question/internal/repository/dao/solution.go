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

	"github.com/ego-component/egorm"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
)

type SolutionDAO interface {
	Insert(ctx context.Context, s Solution) (Solution, error)
	// ListByQuestion 按照语言 id 和 id 升序
	ListByQuestion(ctx context.Context, qid int64) ([]Solution, error)
	FindByLanguage(ctx context.Context, qid, languageId int64) (Solution, error)
}

type GORMSolutionDAO struct {
	db *egorm.Component
}

func NewGORMSolutionDAO(db *egorm.Component) SolutionDAO {
	return &GORMSolutionDAO{db: db}
}

func (d *GORMSolutionDAO) Insert(ctx context.Context, s Solution) (Solution, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	return s, mysqlx.Translate(err)
}

func (d *GORMSolutionDAO) ListByQuestion(ctx context.Context, qid int64) ([]Solution, error) {
	var res []Solution
	err := d.db.WithContext(ctx).
		Where("question_id = ?", qid).
		Order("language_id ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMSolutionDAO) FindByLanguage(ctx context.Context, qid, languageId int64) (Solution, error) {
	var s Solution
	err := d.db.WithContext(ctx).
		Where("question_id = ? AND language_id = ?", qid, languageId).
		First(&s).Error
	return s, err
}

type Solution struct {
	Id          int64          `gorm:"primaryKey,autoIncrement"`
	QuestionId  int64          `gorm:"not null;index:idx_question_language"`
	Question    *Question      `gorm:"foreignKey:QuestionId;references:Id;constraint:OnDelete:CASCADE"`
	LanguageId  int64          `gorm:"not null;index:idx_question_language"`
	Language    *languageRef   `gorm:"foreignKey:LanguageId;references:Id"`
	Code        string         `gorm:"type:text;not null"`
	Explanation sql.NullString `gorm:"type:text"`
	IsOptimal   bool           `gorm:"not null;default:false"`
	Ctime       int64
	Utime       int64
}

func (Solution) TableName() string {
	return "solutions"
}

type languageRef struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
}

func (languageRef) TableName() string {
	return "programming_languages"
}
