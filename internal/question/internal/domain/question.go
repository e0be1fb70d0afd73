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

package domain

import "encoding/json"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

type Question struct {
	Id          int64
	Title       string
	Slug        string
	Description string
	Difficulty  Difficulty
	// 0 代表没有关联公司
	CompanyId int64
	// 0 代表没有关联主题
	TopicId         int64
	TimeComplexity  string
	SpaceComplexity string
	Hints           []string
	// TestCases 是任意的 JSON，一般是 [{"input": "...", "expected": "..."}]
	TestCases json.RawMessage
	Ctime     int64
	Utime     int64
}

// QuestionFilter 是查询条件，零值字段不参与过滤，各条件之间是 AND 关系
type QuestionFilter struct {
	CompanyId  int64
	TopicId    int64
	Difficulty Difficulty
}

type Solution struct {
	Id          int64
	QuestionId  int64
	LanguageId  int64
	Code        string
	Explanation string
	IsOptimal   bool
	Ctime       int64
	Utime       int64
}
