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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/cache"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/dao"
)

//go:generate mockgen -source=./session.go -package=repomocks -destination=mocks/session.mock.go -typed SessionRepository
type SessionRepository interface {
	Create(ctx context.Context, s domain.Session, data map[string]string) error
	Find(ctx context.Context, sid string) (domain.Session, error)
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context, now int64, limit int) (int64, error)
	SaveState(ctx context.Context, state string) error
	ConsumeState(ctx context.Context, state string) (bool, error)
}

type sessionRepository struct {
	dao   dao.SessionDAO
	state cache.StateCache
}

func NewSessionRepository(d dao.SessionDAO, state cache.StateCache) SessionRepository {
	return &sessionRepository{
		dao:   d,
		state: state,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s domain.Session, data map[string]string) error {
	return r.dao.Insert(ctx, dao.Session{
		Sid:    s.Sid,
		Uid:    s.Uid,
		Data:   sqlx.JsonColumn[map[string]string]{Val: data, Valid: len(data) > 0},
		Expire: s.Expire,
		Ctime:  time.Now().UnixMilli(),
	})
}

func (r *sessionRepository) Find(ctx context.Context, sid string) (domain.Session, error) {
	s, err := r.dao.FindBySid(ctx, sid)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Sid:    s.Sid,
		Uid:    s.Uid,
		Expire: s.Expire,
	}, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sid string) error {
	return r.dao.Delete(ctx, sid)
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now int64, limit int) (int64, error) {
	return r.dao.DeleteExpired(ctx, now, limit)
}

func (r *sessionRepository) SaveState(ctx context.Context, state string) error {
	return r.state.Set(ctx, state)
}

func (r *sessionRepository) ConsumeState(ctx context.Context, state string) (bool, error) {
	return r.state.Consume(ctx, state)
}
