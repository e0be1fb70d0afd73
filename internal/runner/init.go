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

package runner

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/service"
)

// initRunner 没有配置 runner.endpoint 的时候，代码执行不可用
func initRunner() service.Runner {
	type Config struct {
		Endpoint    string        `yaml:"endpoint"`
		Timeout     time.Duration `yaml:"timeout"`
		Concurrency int           `yaml:"concurrency"`
	}
	var cfg Config
	err := econf.UnmarshalKey("runner", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Endpoint == "" {
		elog.DefaultLogger.Warn("没有配置代码执行服务，代码执行不可用")
		return service.UnavailableRunner{}
	}
	return service.NewRemoteRunner(cfg.Endpoint, cfg.Timeout, cfg.Concurrency)
}
