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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/repository/dao"
)

//go:generate mockgen -source=./record.go -package=repomocks -destination=mocks/record.mock.go -typed LLMRecordRepository
type LLMRecordRepository interface {
	SaveRecord(ctx context.Context, r domain.LLMRecord) (int64, error)
}

// 调用日志
type llmRecordRepository struct {
	dao dao.LLMRecordDAO
}

func NewLLMRecordRepository(d dao.LLMRecordDAO) LLMRecordRepository {
	return &llmRecordRepository{
		dao: d,
	}
}

func (r *llmRecordRepository) SaveRecord(ctx context.Context, l domain.LLMRecord) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(l))
}

func (r *llmRecordRepository) toEntity(l domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:     l.Id,
		Tid:    l.Tid,
		Uid:    l.Uid,
		Biz:    l.Biz,
		Tokens: l.Tokens,
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   l.Input,
		},
		Status: l.Status.ToUint8(),
		Answer: sqlx.NewNullString(l.Answer),
	}
}
