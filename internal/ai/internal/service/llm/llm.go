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

package llm

import (
	"context"

	"github.com/hariprasad1114/codemaster/internal/ai/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/repository"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler/log"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler/record"
)

//go:generate mockgen -source=./llm.go -destination=./mocks/llm.mock.go -package=llmmocks -typed=true Service
type Service interface {
	Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

type llmService struct {
	handler handler.Handler
}

// NewLLMService root 是具体的平台，外面依次包裹日志和调用记录
func NewLLMService(root handler.Handler, repo repository.LLMRecordRepository) Service {
	return &llmService{
		handler: handler.NewCompositionHandler([]handler.Builder{
			log.NewHandler(),
			record.NewHandler(repo),
		}, root),
	}
}

func (g *llmService) Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return g.handler.Handle(ctx, req)
}
