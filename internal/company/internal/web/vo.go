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
	"github.com/hariprasad1114/codemaster/internal/company/internal/domain"
)

type CreateCompanyReq struct {
	Name        string `json:"name" binding:"required,max=128"`
	Slug        string `json:"slug" binding:"omitempty,max=128,slug"`
	Color       string `json:"color" binding:"required,max=32"`
	Logo        string `json:"logo" binding:"max=512"`
	Description string `json:"description"`
}

func (r CreateCompanyReq) toDomain() domain.Company {
	return domain.Company{
		Name:        r.Name,
		Slug:        r.Slug,
		Color:       r.Color,
		Logo:        r.Logo,
		Description: r.Description,
	}
}

type Company struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
}

func newCompany(c domain.Company) Company {
	return Company{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Logo:        c.Logo,
		Description: c.Description,
		CreatedAt:   c.Ctime,
	}
}
