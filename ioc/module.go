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

package ioc

import (
	"github.com/ego-component/egorm"
	"github.com/hariprasad1114/codemaster/internal/ai"
	"github.com/hariprasad1114/codemaster/internal/company"
	"github.com/hariprasad1114/codemaster/internal/language"
	"github.com/hariprasad1114/codemaster/internal/progress"
	"github.com/hariprasad1114/codemaster/internal/question"
	"github.com/hariprasad1114/codemaster/internal/runner"
	"github.com/hariprasad1114/codemaster/internal/topic"
	"github.com/hariprasad1114/codemaster/internal/user"
)

// InitQuestionModule 题目表有指向公司和主题的外键，所以这些模块要先建表
func InitQuestionModule(db *egorm.Component,
	_ *company.Module,
	_ *topic.Module,
	_ *language.Module) (*question.Module, error) {
	return question.InitModule(db)
}

// InitProgressModule 进度表有指向题目的外键
func InitProgressModule(db *egorm.Component, _ *question.Module) (*progress.Module, error) {
	return progress.InitModule(db)
}

// initHandlers 路由按照这个顺序注册
func initHandlers(
	companyModule *company.Module,
	topicModule *topic.Module,
	languageModule *language.Module,
	questionModule *question.Module,
	progressModule *progress.Module,
	userModule *user.Module,
	aiModule *ai.Module,
	runnerModule *runner.Module,
) []Handler {
	return []Handler{
		companyModule.Hdl,
		topicModule.Hdl,
		languageModule.Hdl,
		questionModule.Hdl,
		progressModule.Hdl,
		userModule.Hdl,
		aiModule.Hdl,
		runnerModule.Hdl,
	}
}
