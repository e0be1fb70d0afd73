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
	"github.com/hariprasad1114/codemaster/internal/topic/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/topic/internal/repository/dao"
)

var ErrTopicNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./topic.go -destination=mocks/topic.mock.go -package=repomocks -typed TopicRepository
type TopicRepository interface {
	Create(ctx context.Context, t domain.Topic) (domain.Topic, error)
	FindBySlug(ctx context.Context, slug string) (domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
}

type topicRepository struct {
	dao dao.TopicDAO
}

func NewTopicRepository(d dao.TopicDAO) TopicRepository {
	return &topicRepository{dao: d}
}

func (r *topicRepository) Create(ctx context.Context, t domain.Topic) (domain.Topic, error) {
	entity, err := r.dao.Insert(ctx, dao.Topic{
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
	})
	if err != nil {
		return domain.Topic{}, err
	}
	return r.toDomain(entity), nil
}

func (r *topicRepository) FindBySlug(ctx context.Context, slug string) (domain.Topic, error) {
	entity, err := r.dao.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Topic{}, err
	}
	return r.toDomain(entity), nil
}

func (r *topicRepository) List(ctx context.Context) ([]domain.Topic, error) {
	entities, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Topic) domain.Topic {
		return r.toDomain(src)
	}), nil
}

func (r *topicRepository) toDomain(t dao.Topic) domain.Topic {
	return domain.Topic{
		Id:          t.Id,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Ctime:       t.Ctime,
		Utime:       t.Utime,
	}
}
