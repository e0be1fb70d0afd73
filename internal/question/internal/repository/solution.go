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
	"github.com/hariprasad1114/codemaster/internal/question/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/question/internal/repository/dao"
)

//go:generate mockgen -source=./solution.go -destination=mocks/solution.mock.go -package=repomocks -typed SolutionRepository
type SolutionRepository interface {
	Create(ctx context.Context, s domain.Solution) (domain.Solution, error)
	ListByQuestion(ctx context.Context, qid int64) ([]domain.Solution, error)
	FindByLanguage(ctx context.Context, qid, languageId int64) (domain.Solution, error)
}

type solutionRepository struct {
	dao dao.SolutionDAO
}

func NewSolutionRepository(d dao.SolutionDAO) SolutionRepository {
	return &solutionRepository{dao: d}
}

func (r *solutionRepository) Create(ctx context.Context, s domain.Solution) (domain.Solution, error) {
	entity, err := r.dao.Insert(ctx, dao.Solution{
		QuestionId:  s.QuestionId,
		LanguageId:  s.LanguageId,
		Code:        s.Code,
		Explanation: sql.NullString{String: s.Explanation, Valid: s.Explanation != ""},
		IsOptimal:   s.IsOptimal,
	})
	if err != nil {
		return domain.Solution{}, err
	}
	return r.toDomain(entity), nil
}

func (r *solutionRepository) ListByQuestion(ctx context.Context, qid int64) ([]domain.Solution, error) {
	entities, err := r.dao.ListByQuestion(ctx, qid)
	return slice.Map(entities, func(idx int, src dao.Solution) domain.Solution {
		return r.toDomain(src)
	}), err
}

func (r *solutionRepository) FindByLanguage(ctx context.Context, qid, languageId int64) (domain.Solution, error) {
	entity, err := r.dao.FindByLanguage(ctx, qid, languageId)
	return r.toDomain(entity), err
}

func (r *solutionRepository) toDomain(s dao.Solution) domain.Solution {
	return domain.Solution{
		Id:          s.Id,
		QuestionId:  s.QuestionId,
		LanguageId:  s.LanguageId,
		Code:        s.Code,
		Explanation: s.Explanation.String,
		IsOptimal:   s.IsOptimal,
		Ctime:       s.Ctime,
		Utime:       s.Utime,
	}
}
