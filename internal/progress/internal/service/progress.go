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

	"github.com/hariprasad1114/codemaster/internal/progress/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/repository"
)

var ErrProgressNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./progress.go -destination=../../mocks/progress.mock.go -package=progressmocks -typed Service
type Service interface {
	// Save 同一个用户同一道题只会有一条记录，只覆盖 update 中给出的字段
	Save(ctx context.Context, uid, qid int64, update domain.ProgressUpdate) (domain.Progress, error)
	Get(ctx context.Context, uid, qid int64) (domain.Progress, error)
	List(ctx context.Context, uid int64) ([]domain.Progress, error)
}

type service struct {
	repo repository.ProgressRepository
}

func NewService(repo repository.ProgressRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, uid, qid int64, update domain.ProgressUpdate) (domain.Progress, error) {
	return s.repo.Upsert(ctx, uid, qid, update)
}

func (s *service) Get(ctx context.Context, uid, qid int64) (domain.Progress, error) {
	return s.repo.Find(ctx, uid, qid)
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Progress, error) {
	return s.repo.List(ctx, uid)
}
