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
	"errors"
	"testing"

	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/cache"
	cachemocks "github.com/hariprasad1114/codemaster/internal/user/internal/repository/cache/mocks"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository/dao"
	daomocks "github.com/hariprasad1114/codemaster/internal/user/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedUserRepository_FindById(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache)
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "缓存命中",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{Id: 1, Sub: "sub-1"}, nil)
				return d, c
			},
			wantUser: domain.User{Id: 1, Sub: "sub-1"},
		},
		{
			name: "缓存未命中，回写缓存",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{}, errors.New("key not found"))
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(dao.User{
					Id:        1,
					Sub:       "sub-1",
					Email:     sql.NullString{String: "a@example.com", Valid: true},
					FirstName: "Ada",
					Ctime:     10,
					Utime:     20,
				}, nil)
				c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("忽略"))
				return d, c
			},
			wantUser: domain.User{
				Id:        1,
				Sub:       "sub-1",
				Email:     "a@example.com",
				FirstName: "Ada",
				Ctime:     10,
				Utime:     20,
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{}, errors.New("key not found"))
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(dao.User{}, dao.ErrRecordNotFound)
				return d, c
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedUserRepository(tc.mock(ctrl))
			u, err := repo.FindById(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestCachedUserRepository_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockUserDAO(ctrl)
	c := cachemocks.NewMockUserCache(ctrl)
	d.EXPECT().Upsert(gomock.Any(), dao.User{
		Sub:   "sub-1",
		Email: sql.NullString{},
	}).Return(dao.User{Id: 5, Sub: "sub-1"}, nil)
	c.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	repo := NewCachedUserRepository(d, c)
	u, err := repo.Upsert(context.Background(), domain.OIDCInfo{Sub: "sub-1"})
	assert.NoError(t, err)
	assert.Equal(t, domain.User{Id: 5, Sub: "sub-1"}, u)
}
