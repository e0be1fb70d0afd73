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

package ai

import (
	"os"
	"sync"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/repository/dao"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm/handler/platform/zhipu"
)

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.LLMRecordDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMLLMRecordDAO(db)
}

// initPlatformHandler 按照 llm.platform 选择大模型平台，默认 openai
func initPlatformHandler() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
		OpenAI   struct {
			APIKey  string `yaml:"apiKey"`
			BaseURL string `yaml:"baseURL"`
			Model   string `yaml:"model"`
		} `yaml:"openai"`
		Zhipu struct {
			APIKey string `yaml:"apiKey"`
			Model  string `yaml:"model"`
		} `yaml:"zhipu"`
	}
	var cfg Config
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Platform {
	case "zhipu":
		h, err := zhipu.NewHandler(cfg.Zhipu.APIKey, cfg.Zhipu.Model)
		if err != nil {
			panic(err)
		}
		return h
	default:
		apiKey := cfg.OpenAI.APIKey
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			apiKey = key
		}
		return openai.NewHandler(apiKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	}
}
