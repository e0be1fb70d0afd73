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
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/hariprasad1114/codemaster/internal/user/internal/service"
)

var _ ecron.NamedJob = (*CleanExpiredSessionsJob)(nil)

type CleanExpiredSessionsJob struct {
	svc   service.SessionService
	limit int
}

func NewCleanExpiredSessionsJob(svc service.SessionService) *CleanExpiredSessionsJob {
	return &CleanExpiredSessionsJob{
		svc:   svc,
		limit: 100,
	}
}

func (c *CleanExpiredSessionsJob) Name() string {
	return "CleanExpiredSessionsJob"
}

func (c *CleanExpiredSessionsJob) Run(ctx context.Context) error {
	var total int64
	for {
		cnt, err := c.svc.CleanExpired(ctx, c.limit)
		if err != nil {
			return fmt.Errorf("清理过期会话失败: %w", err)
		}
		total += cnt
		if cnt < int64(c.limit) {
			break
		}
	}
	elog.DefaultLogger.Info("清理过期会话", elog.Int64("total", total))
	return nil
}
