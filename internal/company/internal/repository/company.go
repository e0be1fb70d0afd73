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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/hariprasad1114/codemaster/internal/company/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/company/internal/repository/dao"
)

var ErrCompanyNotFound = dao.ErrRecordNotFound

type CompanyRepository interface {
	Create(ctx context.Context, c domain.Company) (domain.Company, error)
	FindBySlug(ctx context.Context, slug string) (domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
}

type companyRepository struct {
	dao dao.CompanyDAO
}

func NewCompanyRepository(dao dao.CompanyDAO) CompanyRepository {
	return &companyRepository{
		dao: dao,
	}
}

func (r *companyRepository) Create(ctx context.Context, c domain.Company) (domain.Company, error) {
	entity, err := r.dao.Insert(ctx, r.domainToEntity(c))
	if err != nil {
		return domain.Company{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *companyRepository) FindBySlug(ctx context.Context, slug string) (domain.Company, error) {
	entity, err := r.dao.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Company{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	entities, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Company) domain.Company {
		return r.entityToDomain(src)
	}), nil
}

func (r *companyRepository) domainToEntity(c domain.Company) dao.Company {
	return dao.Company{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Logo:        c.Logo,
		Description: c.Description,
	}
}

func (r *companyRepository) entityToDomain(c dao.Company) domain.Company {
	return domain.Company{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Logo:        c.Logo,
		Description: c.Description,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}
