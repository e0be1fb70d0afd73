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

	"github.com/hariprasad1114/codemaster/internal/language/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/language/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/pkg/slugx"
)

var ErrTutorialNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./tutorial.go -destination=../../mocks/tutorial.mock.go -package=languagemocks -typed TutorialService
type TutorialService interface {
	Create(ctx context.Context, t domain.Tutorial) (domain.Tutorial, error)
	ListByLanguage(ctx context.Context, languageId int64) ([]domain.Tutorial, error)
	GetBySlug(ctx context.Context, languageSlug, slug string) (domain.Tutorial, error)
}

type tutorialService struct {
	repo repository.LanguageRepository
}

func NewTutorialService(repo repository.LanguageRepository) TutorialService {
	return &tutorialService{repo: repo}
}

func (s *tutorialService) Create(ctx context.Context, t domain.Tutorial) (domain.Tutorial, error) {
	t.Slug = slugx.OrDerive(t.Slug, t.Title)
	return s.repo.CreateTutorial(ctx, t)
}

func (s *tutorialService) ListByLanguage(ctx context.Context, languageId int64) ([]domain.Tutorial, error) {
	return s.repo.ListTutorials(ctx, languageId)
}

func (s *tutorialService) GetBySlug(ctx context.Context, languageSlug, slug string) (domain.Tutorial, error) {
	return s.repo.FindTutorial(ctx, languageSlug, slug)
}
