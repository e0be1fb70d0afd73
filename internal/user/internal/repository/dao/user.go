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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go -typed UserDAO
type UserDAO interface {
	// Upsert 按照 sub 插入或者更新，返回最新的数据
	Upsert(ctx context.Context, u User) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindBySub(ctx context.Context, sub string) (User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Upsert(ctx context.Context, u User) (User, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sub"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email",
			"first_name",
			"last_name",
			"profile_image_url",
			"utime",
		}),
	}).Create(&u).Error
	if err != nil {
		return User{}, err
	}
	return ud.FindBySub(ctx, u.Sub)
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindBySub(ctx context.Context, sub string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "sub = ?", sub).Error
	return u, err
}

type User struct {
	Id  int64  `gorm:"primaryKey,autoIncrement"`
	Sub string `gorm:"type:varchar(255);not null;uniqueIndex"`
	// 有些身份提供方不返回邮箱
	Email           sql.NullString `gorm:"type:varchar(255);unique"`
	FirstName       string         `gorm:"type:varchar(128)"`
	LastName        string         `gorm:"type:varchar(128)"`
	ProfileImageUrl string         `gorm:"type:varchar(1024)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
