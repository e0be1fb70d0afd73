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
	"github.com/hariprasad1114/codemaster/internal/pkg/mysqlx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Progress{})
}

type ProgressDAO interface {
	// Upsert 冲突的时候只更新 columns 里的列和 utime
	Upsert(ctx context.Context, p Progress, columns []string) (Progress, error)
	Find(ctx context.Context, uid, qid int64) (Progress, error)
	// List 按照更新时间倒序
	List(ctx context.Context, uid int64) ([]Progress, error)
}

type GORMProgressDAO struct {
	db *egorm.Component
}

func NewGORMProgressDAO(db *egorm.Component) ProgressDAO {
	return &GORMProgressDAO{db: db}
}

func (d *GORMProgressDAO) Upsert(ctx context.Context, p Progress, columns []string) (Progress, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	updates := make([]string, 0, len(columns)+1)
	updates = append(updates, columns...)
	updates = append(updates, "utime")
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}, {Name: "qid"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(&p).Error
	if err != nil {
		return Progress{}, mysqlx.Translate(err)
	}
	// 更新的时候拿不到完整的数据，所以重新查一遍
	return d.Find(ctx, p.Uid, p.Qid)
}

func (d *GORMProgressDAO) Find(ctx context.Context, uid, qid int64) (Progress, error) {
	var p Progress
	err := d.db.WithContext(ctx).
		Where("uid = ? AND qid = ?", uid, qid).
		First(&p).Error
	return p, err
}

func (d *GORMProgressDAO) List(ctx context.Context, uid int64) ([]Progress, error) {
	var res []Progress
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("utime DESC, id DESC").
		Find(&res).Error
	return res, err
}

type Progress struct {
	Id            int64         `gorm:"primaryKey,autoIncrement"`
	Uid           int64         `gorm:"not null;uniqueIndex:uniq_uid_qid"`
	Qid           int64         `gorm:"not null;uniqueIndex:uniq_uid_qid"`
	Question      *questionRef  `gorm:"foreignKey:Qid;references:Id;constraint:OnDelete:CASCADE"`
	Solved        bool          `gorm:"not null;default:false"`
	Attempts      int           `gorm:"not null;default:0"`
	LastAttemptAt sql.NullInt64 `gorm:"comment:最后一次尝试的时间，毫秒"`
	BestTime      sql.NullInt64 `gorm:"comment:最快完成耗时，毫秒"`
	Ctime         int64
	Utime         int64 `gorm:"index"`
}

func (Progress) TableName() string {
	return "user_progress"
}

type questionRef struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
}

func (questionRef) TableName() string {
	return "questions"
}
