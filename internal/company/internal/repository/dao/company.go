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

type CompanyDAO interface {
	Insert(ctx context.Context, c Company) (Company, error)
	FindBySlug(ctx context.Context, slug string) (Company, error)
	List(ctx context.Context) ([]Company, error)
}

type GORMCompanyDAO struct {
	db *egorm.Component
}

func NewGORMCompanyDAO(db *egorm.Component) CompanyDAO {
	return &GORMCompanyDAO{
		db: db,
	}
}

func (c *GORMCompanyDAO) Insert(ctx context.Context, company Company) (Company, error) {
	now := time.Now().UnixMilli()
	company.Ctime = now
	company.Utime = now
	err := c.db.WithContext(ctx).Create(&company).Error
	return company, mysqlx.Translate(err)
}

func (c *GORMCompanyDAO) FindBySlug(ctx context.Context, slug string) (Company, error) {
	var company Company
	err := c.db.WithContext(ctx).Where("slug = ?", slug).First(&company).Error
	return company, err
}

func (c *GORMCompanyDAO) List(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := c.db.WithContext(ctx).Order("name ASC").Find(&companies).Error
	return companies, err
}

type Company struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Slug        string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Color       string `gorm:"type:varchar(32);not null"`
	Logo        string `gorm:"type:varchar(512)"`
	Description string `gorm:"type:text"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
