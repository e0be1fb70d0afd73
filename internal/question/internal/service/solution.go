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

package service

import (
	"context"

	"github.com/hariprasad1114/codemaster/internal/question/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/question/internal/repository"
)

var ErrSolutionNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./solution.go -destination=../../mocks/solution.mock.go -package=questionmocks -typed SolutionService
type SolutionService interface {
	Create(ctx context.Context, s domain.Solution) (domain.Solution, error)
	ListByQuestion(ctx context.Context, qid int64) ([]domain.Solution, error)
	// GetByLanguage 同一个语言有多个解法的时候，返回最早的那个
	GetByLanguage(ctx context.Context, qid, languageId int64) (domain.Solution, error)
}

type solutionService struct {
	repo repository.SolutionRepository
}

func NewSolutionService(repo repository.SolutionRepository) SolutionService {
	return &solutionService{repo: repo}
}

func (s *solutionService) Create(ctx context.Context, sol domain.Solution) (domain.Solution, error) {
	return s.repo.Create(ctx, sol)
}

func (s *solutionService) ListByQuestion(ctx context.Context, qid int64) ([]domain.Solution, error) {
	return s.repo.ListByQuestion(ctx, qid)
}

func (s *solutionService) GetByLanguage(ctx context.Context, qid, languageId int64) (domain.Solution, error) {
	return s.repo.FindByLanguage(ctx, qid, languageId)
}
