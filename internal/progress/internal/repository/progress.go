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
	"github.com/hariprasad1114/codemaster/internal/progress/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/progress/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./progress.go -destination=mocks/progress.mock.go -package=repomocks -typed ProgressRepository
type ProgressRepository interface {
	Upsert(ctx context.Context, uid, qid int64, update domain.ProgressUpdate) (domain.Progress, error)
	Find(ctx context.Context, uid, qid int64) (domain.Progress, error)
	List(ctx context.Context, uid int64) ([]domain.Progress, error)
}

type progressRepository struct {
	dao dao.ProgressDAO
}

func NewProgressRepository(d dao.ProgressDAO) ProgressRepository {
	return &progressRepository{dao: d}
}

func (r *progressRepository) Upsert(ctx context.Context, uid, qid int64, update domain.ProgressUpdate) (domain.Progress, error) {
	entity := dao.Progress{Uid: uid, Qid: qid}
	columns := make([]string, 0, 4)
	if update.Solved != nil {
		entity.Solved = *update.Solved
		columns = append(columns, "solved")
	}
	if update.Attempts != nil {
		entity.Attempts = *update.Attempts
		columns = append(columns, "attempts")
	}
	if update.LastAttemptAt != nil {
		entity.LastAttemptAt = sql.NullInt64{Int64: *update.LastAttemptAt, Valid: true}
		columns = append(columns, "last_attempt_at")
	}
	if update.BestTime != nil {
		entity.BestTime = sql.NullInt64{Int64: *update.BestTime, Valid: true}
		columns = append(columns, "best_time")
	}
	res, err := r.dao.Upsert(ctx, entity, columns)
	if err != nil {
		return domain.Progress{}, err
	}
	return r.toDomain(res), nil
}

func (r *progressRepository) Find(ctx context.Context, uid, qid int64) (domain.Progress, error) {
	res, err := r.dao.Find(ctx, uid, qid)
	return r.toDomain(res), err
}

func (r *progressRepository) List(ctx context.Context, uid int64) ([]domain.Progress, error) {
	res, err := r.dao.List(ctx, uid)
	return slice.Map(res, func(idx int, src dao.Progress) domain.Progress {
		return r.toDomain(src)
	}), err
}

func (r *progressRepository) toDomain(p dao.Progress) domain.Progress {
	return domain.Progress{
		Id:            p.Id,
		Uid:           p.Uid,
		Qid:           p.Qid,
		Solved:        p.Solved,
		Attempts:      p.Attempts,
		LastAttemptAt: p.LastAttemptAt.Int64,
		BestTime:      p.BestTime.Int64,
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}
