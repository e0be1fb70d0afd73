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

	"github.com/ecodeclub/ekit/slice"
	"github.com/hariprasad1114/codemaster/internal/language/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/language/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./language.go -destination=mocks/language.mock.go -package=repomocks -typed LanguageRepository
type LanguageRepository interface {
	Create(ctx context.Context, l domain.Language) (domain.Language, error)
	FindById(ctx context.Context, id int64) (domain.Language, error)
	FindBySlug(ctx context.Context, slug string) (domain.Language, error)
	List(ctx context.Context) ([]domain.Language, error)

	CreateTutorial(ctx context.Context, t domain.Tutorial) (domain.Tutorial, error)
	ListTutorials(ctx context.Context, languageId int64) ([]domain.Tutorial, error)
	FindTutorial(ctx context.Context, languageSlug, slug string) (domain.Tutorial, error)
}

type languageRepository struct {
	dao dao.LanguageDAO
}

func NewLanguageRepository(d dao.LanguageDAO) LanguageRepository {
	return &languageRepository{dao: d}
}

func (r *languageRepository) Create(ctx context.Context, l domain.Language) (domain.Language, error) {
	entity, err := r.dao.Insert(ctx, dao.Language{
		Name:            l.Name,
		Slug:            l.Slug,
		Icon:            l.Icon,
		Color:           l.Color,
		Description:     l.Description,
		SyntaxHighlight: l.SyntaxHighlight,
	})
	if err != nil {
		return domain.Language{}, err
	}
	return r.toDomain(entity), nil
}

func (r *languageRepository) FindById(ctx context.Context, id int64) (domain.Language, error) {
	entity, err := r.dao.FindById(ctx, id)
	return r.toDomain(entity), err
}

func (r *languageRepository) FindBySlug(ctx context.Context, slug string) (domain.Language, error) {
	entity, err := r.dao.FindBySlug(ctx, slug)
	return r.toDomain(entity), err
}

func (r *languageRepository) List(ctx context.Context) ([]domain.Language, error) {
	entities, err := r.dao.List(ctx)
	return slice.Map(entities, func(idx int, src dao.Language) domain.Language {
		return r.toDomain(src)
	}), err
}

func (r *languageRepository) CreateTutorial(ctx context.Context, t domain.Tutorial) (domain.Tutorial, error) {
	entity, err := r.dao.InsertTutorial(ctx, dao.Tutorial{
		LanguageId: t.LanguageId,
		Title:      t.Title,
		Slug:       t.Slug,
		Content:    t.Content,
		SortOrder:  t.Order,
		Difficulty: string(t.Difficulty),
	})
	if err != nil {
		return domain.Tutorial{}, err
	}
	return r.tutorialToDomain(entity), nil
}

func (r *languageRepository) ListTutorials(ctx context.Context, languageId int64) ([]domain.Tutorial, error) {
	entities, err := r.dao.ListTutorials(ctx, languageId)
	return slice.Map(entities, func(idx int, src dao.Tutorial) domain.Tutorial {
		return r.tutorialToDomain(src)
	}), err
}

func (r *languageRepository) FindTutorial(ctx context.Context, languageSlug, slug string) (domain.Tutorial, error) {
	entity, err := r.dao.FindTutorial(ctx, languageSlug, slug)
	return r.tutorialToDomain(entity), err
}

func (r *languageRepository) toDomain(l dao.Language) domain.Language {
	return domain.Language{
		Id:              l.Id,
		Name:            l.Name,
		Slug:            l.Slug,
		Icon:            l.Icon,
		Color:           l.Color,
		Description:     l.Description,
		SyntaxHighlight: l.SyntaxHighlight,
		Ctime:           l.Ctime,
		Utime:           l.Utime,
	}
}

func (r *languageRepository) tutorialToDomain(t dao.Tutorial) domain.Tutorial {
	return domain.Tutorial{
		Id:         t.Id,
		LanguageId: t.LanguageId,
		Title:      t.Title,
		Slug:       t.Slug,
		Content:    t.Content,
		Order:      t.SortOrder,
		Difficulty: domain.Difficulty(t.Difficulty),
		Ctime:      t.Ctime,
		Utime:      t.Utime,
	}
}
