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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

type SessionDAO interface {
	Insert(ctx context.Context, s Session) error
	FindBySid(ctx context.Context, sid string) (Session, error)
	Delete(ctx context.Context, sid string) error
	// DeleteExpired 删除 expire 早于 now 的记录，一次最多删除 limit 条
	DeleteExpired(ctx context.Context, now int64, limit int) (int64, error)
}

type GORMSessionDAO struct {
	db *egorm.Component
}

func NewGORMSessionDAO(db *egorm.Component) SessionDAO {
	return &GORMSessionDAO{db: db}
}

func (d *GORMSessionDAO) Insert(ctx context.Context, s Session) error {
	return d.db.WithContext(ctx).Create(&s).Error
}

func (d *GORMSessionDAO) FindBySid(ctx context.Context, sid string) (Session, error) {
	var s Session
	err := d.db.WithContext(ctx).Where("sid = ?", sid).First(&s).Error
	return s, err
}

func (d *GORMSessionDAO) Delete(ctx context.Context, sid string) error {
	return d.db.WithContext(ctx).Where("sid = ?", sid).Delete(&Session{}).Error
}

func (d *GORMSessionDAO) DeleteExpired(ctx context.Context, now int64, limit int) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("expire < ?", now).
		Limit(limit).
		Delete(&Session{})
	return res.RowsAffected, res.Error
}

type Session struct {
	Sid  string                             `gorm:"type:varchar(64);primaryKey"`
	Uid  int64                              `gorm:"not null;index"`
	Data sqlx.JsonColumn[map[string]string] `gorm:"type:json"`
	// 毫秒
	Expire int64 `gorm:"not null;index"`
	Ctime  int64
}

func (Session) TableName() string {
	return "sessions"
}
