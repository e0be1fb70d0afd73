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

	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/cache"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go -typed UserRepository
type UserRepository interface {
	// Upsert 按照 sub 插入或者更新
	Upsert(ctx context.Context, info domain.OIDCInfo) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Upsert(ctx context.Context, info domain.OIDCInfo) (domain.User, error) {
	ue, err := ur.dao.Upsert(ctx, dao.User{
		Sub: info.Sub,
		Email: sql.NullString{
			String: info.Email,
			Valid:  info.Email != "",
		},
		FirstName:       info.FirstName,
		LastName:        info.LastName,
		ProfileImageUrl: info.ProfileImageURL,
	})
	if err != nil {
		return domain.User{}, err
	}
	// 资料可能变了
	_ = ur.cache.Delete(ctx, ue.Id)
	return ur.toDomain(ue), nil
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.toDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) toDomain(ue dao.User) domain.User {
	return domain.User{
		Id:              ue.Id,
		Sub:             ue.Sub,
		Email:           ue.Email.String,
		FirstName:       ue.FirstName,
		LastName:        ue.LastName,
		ProfileImageURL: ue.ProfileImageUrl,
		Ctime:           ue.Ctime,
		Utime:           ue.Utime,
	}
}
