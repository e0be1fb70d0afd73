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
	"github.com/hariprasad1114/codemaster/internal/topic/internal/domain"
)

type CreateTopicReq struct {
	Name        string `json:"name" binding:"required,max=128"`
	Slug        string `json:"slug" binding:"omitempty,max=128,slug"`
	Description string `json:"description"`
}

type Topic struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
}

func newTopic(t domain.Topic) Topic {
	return Topic{
		Id:          t.Id,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		CreatedAt:   t.Ctime,
	}
}
