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

package mysqlx

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const (
	uniqueIndexErrNo uint16 = 1062
	foreignKeyErrNo  uint16 = 1452
)

var (
	// ErrDuplicateKey 违反唯一索引
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKey 引用的记录不存在
	ErrForeignKey = errors.New("referenced record does not exist")
)

// Translate 把 MySQL 的约束冲突转换为哨兵错误，原始错误仍然保留在错误链上
func Translate(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case uniqueIndexErrNo:
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case foreignKeyErrNo:
		return fmt.Errorf("%w: %w", ErrForeignKey, err)
	default:
		return err
	}
}

// IsConstraintViolation 调用方传入了非法数据，而不是存储出了问题
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrForeignKey)
}
