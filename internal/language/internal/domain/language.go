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

type Language struct {
	Id              int64
	Name            string
	Slug            string
	Icon            string
	Color           string
	Description     string
	SyntaxHighlight string
	Ctime           int64
	Utime           int64
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Tutorial 的 slug 只在同一个语言下唯一
type Tutorial struct {
	Id         int64
	LanguageId int64
	Title      string
	Slug       string
	// Markdown
	Content    string
	Order      int
	Difficulty Difficulty
	Ctime      int64
	Utime      int64
}
