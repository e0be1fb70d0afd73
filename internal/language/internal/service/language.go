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

	"github.com/hariprasad1114/codemaster/internal/language/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/language/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/pkg/slugx"
)

var ErrLanguageNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./language.go -destination=../../mocks/language.mock.go -package=languagemocks -typed LanguageService
type LanguageService interface {
	Create(ctx context.Context, l domain.Language) (domain.Language, error)
	GetBySlug(ctx context.Context, slug string) (domain.Language, error)
	// Resolve 既可以按照 id 也可以按照 slug 查找
	Resolve(ctx context.Context, idOrSlug string) (domain.Language, error)
	List(ctx context.Context) ([]domain.Language, error)
}

type languageService struct {
	repo repository.LanguageRepository
}

func NewLanguageService(repo repository.LanguageRepository) LanguageService {
	return &languageService{repo: repo}
}

func (s *languageService) Create(ctx context.Context, l domain.Language) (domain.Language, error) {
	l.Slug = slugx.OrDerive(l.Slug, l.Name)
	return s.repo.Create(ctx, l)
}

func (s *languageService) GetBySlug(ctx context.Context, slug string) (domain.Language, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *languageService) Resolve(ctx context.Context, idOrSlug string) (domain.Language, error) {
	id, err := strconv.ParseInt(idOrSlug, 10, 64)
	if err == nil {
		return s.repo.FindById(ctx, id)
	}
	return s.repo.FindBySlug(ctx, idOrSlug)
}

func (s *languageService) List(ctx context.Context) ([]domain.Language, error) {
	return s.repo.List(ctx)
}
