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

package web

import (
	"encoding/json"

	"github.com/hariprasad1114/codemaster/internal/question/internal/domain"
)

type ListQuestionReq struct {
	CompanyId  int64  `form:"companyId" binding:"omitempty,min=1"`
	TopicId    int64  `form:"topicId" binding:"omitempty,min=1"`
	Difficulty string `form:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
}

type CreateQuestionReq struct {
	Title           string          `json:"title" binding:"required,max=512"`
	Slug            string          `json:"slug" binding:"omitempty,max=255,slug"`
	Description     string          `json:"description" binding:"required"`
	Difficulty      string          `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	CompanyId       int64           `json:"companyId" binding:"omitempty,min=1"`
	TopicId         int64           `json:"topicId" binding:"omitempty,min=1"`
	TimeComplexity  string          `json:"timeComplexity" binding:"max=64"`
	SpaceComplexity string          `json:"spaceComplexity" binding:"max=64"`
	Hints           []string        `json:"hints"`
	TestCases       json.RawMessage `json:"testCases"`
}

type CreateSolutionReq struct {
	LanguageId  int64  `json:"languageId" binding:"required,min=1"`
	Code        string `json:"code" binding:"required"`
	Explanation string `json:"explanation"`
	IsOptimal   bool   `json:"isOptimal"`
}

type Question struct {
	Id              int64           `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Difficulty      string          `json:"difficulty"`
	CompanyId       int64           `json:"companyId,omitempty"`
	TopicId         int64           `json:"topicId,omitempty"`
	TimeComplexity  string          `json:"timeComplexity,omitempty"`
	SpaceComplexity string          `json:"spaceComplexity,omitempty"`
	Hints           []string        `json:"hints"`
	TestCases       json.RawMessage `json:"testCases,omitempty"`
	CreatedAt       int64           `json:"createdAt"`
}

func newQuestion(q domain.Question) Question {
	hints := q.Hints
	if hints == nil {
		hints = []string{}
	}
	return Question{
		Id:              q.Id,
		Title:           q.Title,
		Slug:            q.Slug,
		Description:     q.Description,
		Difficulty:      string(q.Difficulty),
		CompanyId:       q.CompanyId,
		TopicId:         q.TopicId,
		TimeComplexity:  q.TimeComplexity,
		SpaceComplexity: q.SpaceComplexity,
		Hints:           hints,
		TestCases:       q.TestCases,
		CreatedAt:       q.Ctime,
	}
}

type Solution struct {
	Id          int64  `json:"id"`
	QuestionId  int64  `json:"questionId"`
	LanguageId  int64  `json:"languageId"`
	Code        string `json:"code"`
	Explanation string `json:"explanation,omitempty"`
	IsOptimal   bool   `json:"isOptimal"`
	CreatedAt   int64  `json:"createdAt"`
}

func newSolution(s domain.Solution) Solution {
	return Solution{
		Id:          s.Id,
		QuestionId:  s.QuestionId,
		LanguageId:  s.LanguageId,
		Code:        s.Code,
		Explanation: s.Explanation,
		IsOptimal:   s.IsOptimal,
		CreatedAt:   s.Ctime,
	}
}
