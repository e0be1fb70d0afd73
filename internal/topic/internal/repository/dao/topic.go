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
	"time"

	"github.com/ego-component/egorm"
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Topic{})
}

type TopicDAO interface {
	Insert(ctx context.Context, t Topic) (Topic, error)
	FindBySlug(ctx context.Context, slug string) (Topic, error)
	List(ctx context.Context) ([]Topic, error)
}

type GORMTopicDAO struct {
	db *egorm.Component
}

func NewGORMTopicDAO(db *egorm.Component) TopicDAO {
	return &GORMTopicDAO{db: db}
}

func (d *GORMTopicDAO) Insert(ctx context.Context, t Topic) (Topic, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Create(&t).Error
	return t, mysqlx.Translate(err)
}

func (d *GORMTopicDAO) FindBySlug(ctx context.Context, slug string) (Topic, error) {
	var t Topic
	err := d.db.WithContext(ctx).Where("slug = ?", slug).First(&t).Error
	return t, err
}

func (d *GORMTopicDAO) List(ctx context.Context) ([]Topic, error) {
	var res []Topic
	err := d.db.WithContext(ctx).Order("name ASC").Find(&res).Error
	return res, err
}

type Topic struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(128);not null"`
	Slug        string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}
