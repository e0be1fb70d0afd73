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

package job

import (
	"context"
	"errors"
	"testing"

	"github.com/hariprasad1114/codemaster/internal/user/internal/service"
	svcmocks "github.com/hariprasad1114/codemaster/internal/user/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCleanExpiredSessionsJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.SessionService
		wantErr error
	}{
		{
			name: "分批删除直到不足一批",
			mock: func(ctrl *gomock.Controller) service.SessionService {
				svc := svcmocks.NewMockSessionService(ctrl)
				gomock.InOrder(
					svc.EXPECT().CleanExpired(gomock.Any(), 100).Return(int64(100), nil),
					svc.EXPECT().CleanExpired(gomock.Any(), 100).Return(int64(100), nil),
					svc.EXPECT().CleanExpired(gomock.Any(), 100).Return(int64(3), nil),
				)
				return svc
			},
		},
		{
			name: "没有过期会话",
			mock: func(ctrl *gomock.Controller) service.SessionService {
				svc := svcmocks.NewMockSessionService(ctrl)
				svc.EXPECT().CleanExpired(gomock.Any(), 100).Return(int64(0), nil)
				return svc
			},
		},
		{
			name: "删除失败",
			mock: func(ctrl *gomock.Controller) service.SessionService {
				svc := svcmocks.NewMockSessionService(ctrl)
				svc.EXPECT().CleanExpired(gomock.Any(), 100).Return(int64(0), errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("清理过期会话失败: mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			job := NewCleanExpiredSessionsJob(tc.mock(ctrl))
			assert.Equal(t, "CleanExpiredSessionsJob", job.Name())
			err := job.Run(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
