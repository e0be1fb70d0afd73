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
	"errors"

	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository"
)

var ErrUserNotFound = errors.New("用户不存在")

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go -typed UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// Upsert 登录的时候调用，用户不存在就创建，存在就更新资料
	Upsert(ctx context.Context, info domain.OIDCInfo) (domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

func (svc *userService) Upsert(ctx context.Context, info domain.OIDCInfo) (domain.User, error) {
	return svc.repo.Upsert(ctx, info)
}
