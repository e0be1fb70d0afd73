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
	"github.com/hariprasad1114/codemaster/internal/language/internal/domain"
)

type CreateLanguageReq struct {
	Name            string `json:"name" binding:"required,max=128"`
	Slug            string `json:"slug" binding:"omitempty,max=128,slug"`
	Icon            string `json:"icon" binding:"required,max=128"`
	Color           string `json:"color" binding:"required,max=32"`
	Description     string `json:"description"`
	SyntaxHighlight string `json:"syntaxHighlight" binding:"required,max=64"`
}

type CreateTutorialReq struct {
	Title      string `json:"title" binding:"required,max=256"`
	Slug       string `json:"slug" binding:"omitempty,max=128,slug"`
	Content    string `json:"content" binding:"required"`
	Order      int    `json:"order" binding:"min=0"`
	Difficulty string `json:"difficulty" binding:"required,oneof=Beginner Intermediate Advanced"`
}

type Language struct {
	Id              int64  `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	Description     string `json:"description"`
	SyntaxHighlight string `json:"syntaxHighlight"`
	CreatedAt       int64  `json:"createdAt"`
}

func newLanguage(l domain.Language) Language {
	return Language{
		Id:              l.Id,
		Name:            l.Name,
		Slug:            l.Slug,
		Icon:            l.Icon,
		Color:           l.Color,
		Description:     l.Description,
		SyntaxHighlight: l.SyntaxHighlight,
		CreatedAt:       l.Ctime,
	}
}

type Tutorial struct {
	Id         int64  `json:"id"`
	LanguageId int64  `json:"languageId"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Order      int    `json:"order"`
	Difficulty string `json:"difficulty"`
	CreatedAt  int64  `json:"createdAt"`
}

func newTutorial(t domain.Tutorial) Tutorial {
	return Tutorial{
		Id:         t.Id,
		LanguageId: t.LanguageId,
		Title:      t.Title,
		Slug:       t.Slug,
		Content:    t.Content,
		Order:      t.Order,
		Difficulty: string(t.Difficulty),
		CreatedAt:  t.Ctime,
	}
}
