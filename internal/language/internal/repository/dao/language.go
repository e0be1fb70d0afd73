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

type LanguageDAO interface {
	Insert(ctx context.Context, l Language) (Language, error)
	FindById(ctx context.Context, id int64) (Language, error)
	FindBySlug(ctx context.Context, slug string) (Language, error)
	List(ctx context.Context) ([]Language, error)

	InsertTutorial(ctx context.Context, t Tutorial) (Tutorial, error)
	// ListTutorials 按照 sort_order 升序
	ListTutorials(ctx context.Context, languageId int64) ([]Tutorial, error)
	FindTutorial(ctx context.Context, languageSlug, slug string) (Tutorial, error)
}

type GORMLanguageDAO struct {
	db *egorm.Component
}

func NewGORMLanguageDAO(db *egorm.Component) LanguageDAO {
	return &GORMLanguageDAO{db: db}
}

func (d *GORMLanguageDAO) Insert(ctx context.Context, l Language) (Language, error) {
	now := time.Now().UnixMilli()
	l.Ctime = now
	l.Utime = now
	err := d.db.WithContext(ctx).Create(&l).Error
	return l, mysqlx.Translate(err)
}

func (d *GORMLanguageDAO) FindById(ctx context.Context, id int64) (Language, error) {
	var l Language
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	return l, err
}

func (d *GORMLanguageDAO) FindBySlug(ctx context.Context, slug string) (Language, error) {
	var l Language
	err := d.db.WithContext(ctx).Where("slug = ?", slug).First(&l).Error
	return l, err
}

func (d *GORMLanguageDAO) List(ctx context.Context) ([]Language, error) {
	var res []Language
	err := d.db.WithContext(ctx).Order("name ASC").Find(&res).Error
	return res, err
}

func (d *GORMLanguageDAO) InsertTutorial(ctx context.Context, t Tutorial) (Tutorial, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Create(&t).Error
	return t, mysqlx.Translate(err)
}

func (d *GORMLanguageDAO) ListTutorials(ctx context.Context, languageId int64) ([]Tutorial, error) {
	var res []Tutorial
	err := d.db.WithContext(ctx).
		Where("language_id = ?", languageId).
		Order("sort_order ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMLanguageDAO) FindTutorial(ctx context.Context, languageSlug, slug string) (Tutorial, error) {
	var t Tutorial
	err := d.db.WithContext(ctx).Model(&Tutorial{}).
		Joins("JOIN programming_languages ON programming_languages.id = language_tutorials.language_id").
		Where("programming_languages.slug = ? AND language_tutorials.slug = ?", languageSlug, slug).
		First(&t).Error
	return t, err
}

type Language struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	Name            string `gorm:"type:varchar(128);not null"`
	Slug            string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Icon            string `gorm:"type:varchar(128);not null"`
	Color           string `gorm:"type:varchar(32);not null"`
	Description     string `gorm:"type:text"`
	SyntaxHighlight string `gorm:"type:varchar(64);not null"`
	Ctime           int64
	Utime           int64
}

func (Language) TableName() string {
	return "programming_languages"
}

type Tutorial struct {
	Id         int64     `gorm:"primaryKey,autoIncrement"`
	LanguageId int64     `gorm:"not null;uniqueIndex:uniq_language_slug"`
	Language   *Language `gorm:"foreignKey:LanguageId;references:Id"`
	Title      string    `gorm:"type:varchar(256);not null"`
	Slug       string    `gorm:"type:varchar(128);not null;uniqueIndex:uniq_language_slug"`
	Content    string    `gorm:"type:text;not null"`
	// order 是 MySQL 的关键字
	SortOrder  int    `gorm:"not null;default:0"`
	Difficulty string `gorm:"type:varchar(32);not null"`
	Ctime      int64
	Utime      int64
}

func (Tutorial) TableName() string {
	return "language_tutorials"
}
