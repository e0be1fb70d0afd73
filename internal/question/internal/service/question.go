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
	"strconv"

	"github.com/hariprasad1114/codemaster/internal/pkg/slugx"
	"github.com/hariprasad1114/codemaster/internal/question/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/question/internal/repository"
)

var ErrQuestionNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./question.go -destination=../../mocks/question.mock.go -package=questionmocks -typed QuestionService
type QuestionService interface {
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	GetById(ctx context.Context, id int64) (domain.Question, error)
	GetBySlug(ctx context.Context, slug string) (domain.Question, error)
	// Resolve 数字按照 id 查找，其余按照 slug 查找
	Resolve(ctx context.Context, idOrSlug string) (domain.Question, error)
	List(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	q.Slug = slugx.OrDerive(q.Slug, q.Title)
	return s.repo.Create(ctx, q)
}

func (s *questionService) GetById(ctx context.Context, id int64) (domain.Question, error) {
	return s.repo.FindById(ctx, id)
}

func (s *questionService) GetBySlug(ctx context.Context, slug string) (domain.Question, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *questionService) Resolve(ctx context.Context, idOrSlug string) (domain.Question, error) {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		return s.repo.FindById(ctx, id)
	}
	return s.repo.FindBySlug(ctx, idOrSlug)
}

func (s *questionService) List(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	return s.repo.List(ctx, filter)
}
