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
	"testing"

	"github.com/hariprasad1114/codemaster/internal/language/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/language/internal/repository"
	repomocks "github.com/hariprasad1114/codemaster/internal/language/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLanguageService_Resolve(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.LanguageRepository
		idOrSlug string
		want     domain.Language
		wantErr  error
	}{
		{
			name: "按照 id",
			mock: func(ctrl *gomock.Controller) repository.LanguageRepository {
				repo := repomocks.NewMockLanguageRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(3)).
					Return(domain.Language{Id: 3, Slug: "go"}, nil)
				return repo
			},
			idOrSlug: "3",
			want:     domain.Language{Id: 3, Slug: "go"},
		},
		{
			name: "按照 slug",
			mock: func(ctrl *gomock.Controller) repository.LanguageRepository {
				repo := repomocks.NewMockLanguageRepository(ctrl)
				repo.EXPECT().FindBySlug(gomock.Any(), "python").
					Return(domain.Language{Id: 1, Slug: "python"}, nil)
				return repo
			},
			idOrSlug: "python",
			want:     domain.Language{Id: 1, Slug: "python"},
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) repository.LanguageRepository {
				repo := repomocks.NewMockLanguageRepository(ctrl)
				repo.EXPECT().FindBySlug(gomock.Any(), "cobol").
					Return(domain.Language{}, repository.ErrRecordNotFound)
				return repo
			},
			idOrSlug: "cobol",
			wantErr:  ErrLanguageNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewLanguageService(tc.mock(ctrl))
			got, err := svc.Resolve(context.Background(), tc.idOrSlug)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTutorialService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockLanguageRepository(ctrl)
	repo.EXPECT().CreateTutorial(gomock.Any(), domain.Tutorial{
		LanguageId: 1,
		Title:      "Getting Started",
		Slug:       "getting-started",
		Content:    "# Hello",
		Difficulty: domain.DifficultyBeginner,
	}).Return(domain.Tutorial{Id: 10, LanguageId: 1, Slug: "getting-started"}, nil)

	svc := NewTutorialService(repo)
	got, err := svc.Create(context.Background(), domain.Tutorial{
		LanguageId: 1,
		Title:      "Getting Started",
		Content:    "# Hello",
		Difficulty: domain.DifficultyBeginner,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), got.Id)
}
