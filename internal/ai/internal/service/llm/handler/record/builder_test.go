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

package record

import (
	"context"
	"errors"
	"testing"

	"github.com/hariprasad1114/codemaster/internal/ai/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/repository"
	repomocks "github.com/hariprasad1114/codemaster/internal/ai/internal/repository/mocks"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler"
	hdlmocks "github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerBuilder_Next(t *testing.T) {
	req := domain.LLMRequest{
		Uid:   1,
		Tid:   "tid-1",
		Biz:   domain.BizGenerateHints,
		Input: []string{"Two Sum"},
	}
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.LLMRecordRepository, handler.Handler)
		wantResp domain.LLMResponse
		wantErr  error
	}{
		{
			name: "成功",
			mock: func(ctrl *gomock.Controller) (repository.LLMRecordRepository, handler.Handler) {
				repo := repomocks.NewMockLLMRecordRepository(ctrl)
				next := hdlmocks.NewMockHandler(ctrl)
				next.EXPECT().Handle(gomock.Any(), req).Return(domain.LLMResponse{Tokens: 12, Answer: "{}"}, nil)
				repo.EXPECT().SaveRecord(gomock.Any(), domain.LLMRecord{
					Tid:    "tid-1",
					Uid:    1,
					Biz:    domain.BizGenerateHints,
					Input:  []string{"Two Sum"},
					Tokens: 12,
					Answer: "{}",
					Status: domain.RecordStatusSuccess,
				}).Return(int64(1), nil)
				return repo, next
			},
			wantResp: domain.LLMResponse{Tokens: 12, Answer: "{}"},
		},
		{
			name: "调用失败也要记录",
			mock: func(ctrl *gomock.Controller) (repository.LLMRecordRepository, handler.Handler) {
				repo := repomocks.NewMockLLMRecordRepository(ctrl)
				next := hdlmocks.NewMockHandler(ctrl)
				next.EXPECT().Handle(gomock.Any(), req).Return(domain.LLMResponse{}, errors.New("mock llm error"))
				repo.EXPECT().SaveRecord(gomock.Any(), domain.LLMRecord{
					Tid:    "tid-1",
					Uid:    1,
					Biz:    domain.BizGenerateHints,
					Input:  []string{"Two Sum"},
					Status: domain.RecordStatusFailed,
				}).Return(int64(1), nil)
				return repo, next
			},
			wantErr: errors.New("mock llm error"),
		},
		{
			name: "保存记录失败不影响结果",
			mock: func(ctrl *gomock.Controller) (repository.LLMRecordRepository, handler.Handler) {
				repo := repomocks.NewMockLLMRecordRepository(ctrl)
				next := hdlmocks.NewMockHandler(ctrl)
				next.EXPECT().Handle(gomock.Any(), req).Return(domain.LLMResponse{Tokens: 3, Answer: "{}"}, nil)
				repo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo, next
			},
			wantResp: domain.LLMResponse{Tokens: 3, Answer: "{}"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, next := tc.mock(ctrl)
			h := NewHandler(repo).Next(next)
			resp, err := h.Handle(context.Background(), req)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}
