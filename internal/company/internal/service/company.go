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

package service

import (
	"context"

	"github.com/hariprasad1114/codemaster/internal/company/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/company/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/pkg/slugx"
)

var ErrCompanyNotFound = repository.ErrCompanyNotFound

//go:generate mockgen -source=./company.go -destination=../../mocks/company.mock.go -package=companymocks -typed CompanyService
type CompanyService interface {
	// Create 没有指定 slug 的时候按照名字生成
	Create(ctx context.Context, c domain.Company) (domain.Company, error)
	GetBySlug(ctx context.Context, slug string) (domain.Company, error)
	// List 按照名字升序
	List(ctx context.Context) ([]domain.Company, error)
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{
		repo: repo,
	}
}

func (s *companyService) Create(ctx context.Context, c domain.Company) (domain.Company, error) {
	c.Slug = slugx.OrDerive(c.Slug, c.Name)
	return s.repo.Create(ctx, c)
}

func (s *companyService) GetBySlug(ctx context.Context, slug string) (domain.Company, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *companyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.repo.List(ctx)
}
