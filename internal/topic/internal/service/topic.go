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

	"github.com/hariprasad1114/codemaster/internal/pkg/slugx"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/repository"
)

var ErrTopicNotFound = repository.ErrTopicNotFound

//go:generate mockgen -source=./topic.go -destination=../../mocks/topic.mock.go -package=topicmocks -typed Service
type Service interface {
	Create(ctx context.Context, t domain.Topic) (domain.Topic, error)
	GetBySlug(ctx context.Context, slug string) (domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
}

type service struct {
	repo repository.TopicRepository
}

func NewService(repo repository.TopicRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, t domain.Topic) (domain.Topic, error) {
	t.Slug = slugx.OrDerive(t.Slug, t.Name)
	return s.repo.Create(ctx, t)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (domain.Topic, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context) ([]domain.Topic, error) {
	return s.repo.List(ctx)
}
