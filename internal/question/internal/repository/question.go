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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/hariprasad1114/codemaster/internal/question/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/question/internal/repository/dao"
	"gorm.io/datatypes"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./question.go -destination=mocks/question.mock.go -package=repomocks -typed QuestionRepository
type QuestionRepository interface {
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	FindById(ctx context.Context, id int64) (domain.Question, error)
	FindBySlug(ctx context.Context, slug string) (domain.Question, error)
	List(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error)
}

type questionRepository struct {
	dao dao.QuestionDAO
}

func NewQuestionRepository(d dao.QuestionDAO) QuestionRepository {
	return &questionRepository{dao: d}
}

func (r *questionRepository) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	entity, err := r.dao.Insert(ctx, r.toEntity(q))
	if err != nil {
		return domain.Question{}, err
	}
	return r.toDomain(entity), nil
}

func (r *questionRepository) FindById(ctx context.Context, id int64) (domain.Question, error) {
	entity, err := r.dao.FindById(ctx, id)
	return r.toDomain(entity), err
}

func (r *questionRepository) FindBySlug(ctx context.Context, slug string) (domain.Question, error) {
	entity, err := r.dao.FindBySlug(ctx, slug)
	return r.toDomain(entity), err
}

func (r *questionRepository) List(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	query := dao.NewQuestionQuery().
		EqIf(filter.CompanyId > 0, "company_id", filter.CompanyId).
		EqIf(filter.TopicId > 0, "topic_id", filter.TopicId).
		EqIf(filter.Difficulty != "", "difficulty", string(filter.Difficulty))
	entities, err := r.dao.List(ctx, query)
	return slice.Map(entities, func(idx int, src dao.Question) domain.Question {
		return r.toDomain(src)
	}), err
}

func (r *questionRepository) toEntity(q domain.Question) dao.Question {
	testCases := datatypes.JSON(q.TestCases)
	if len(testCases) == 0 {
		testCases = datatypes.JSON("[]")
	}
	return dao.Question{
		Title:           q.Title,
		Slug:            q.Slug,
		Description:     q.Description,
		Difficulty:      string(q.Difficulty),
		CompanyId:       sql.NullInt64{Int64: q.CompanyId, Valid: q.CompanyId > 0},
		TopicId:         sql.NullInt64{Int64: q.TopicId, Valid: q.TopicId > 0},
		TimeComplexity:  sql.NullString{String: q.TimeComplexity, Valid: q.TimeComplexity != ""},
		SpaceComplexity: sql.NullString{String: q.SpaceComplexity, Valid: q.SpaceComplexity != ""},
		Hints:           sqlx.JsonColumn[[]string]{Val: q.Hints, Valid: q.Hints != nil},
		TestCases:       testCases,
	}
}

func (r *questionRepository) toDomain(q dao.Question) domain.Question {
	res := domain.Question{
		Id:              q.Id,
		Title:           q.Title,
		Slug:            q.Slug,
		Description:     q.Description,
		Difficulty:      domain.Difficulty(q.Difficulty),
		CompanyId:       q.CompanyId.Int64,
		TopicId:         q.TopicId.Int64,
		TimeComplexity:  q.TimeComplexity.String,
		SpaceComplexity: q.SpaceComplexity.String,
		Hints:           q.Hints.Val,
		Ctime:           q.Ctime,
		Utime:           q.Utime,
	}
	if len(q.TestCases) > 0 {
		res.TestCases = []byte(q.TestCases)
	}
	return res
}
