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

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
)

// StateCache 保存登录时生成的 state，每个 state 只能用一次
type StateCache interface {
	Set(ctx context.Context, state string) error
	// Consume 返回 state 是否存在，存在的话会同时删除
	Consume(ctx context.Context, state string) (bool, error)
}

type stateECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewStateECache(c ecache.Cache) StateCache {
	return &stateECache{
		cache: &ecache.NamespaceCache{
			Namespace: "oauth:state:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (s *stateECache) Set(ctx context.Context, state string) error {
	return s.cache.Set(ctx, state, "1", s.expiration)
}

func (s *stateECache) Consume(ctx context.Context, state string) (bool, error) {
	cnt, err := s.cache.Delete(ctx, state)
	if err != nil {
		return false, err
	}
	return cnt == 1, nil
}
