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

package startup

import (
	"github.com/hariprasad1114/codemaster/internal/company"
	"github.com/hariprasad1114/codemaster/internal/language"
	"github.com/hariprasad1114/codemaster/internal/question"
	"github.com/hariprasad1114/codemaster/internal/topic"
)

// Modules 中字段的顺序就是初始化的顺序，question 的外键依赖前面三个模块的表
type Modules struct {
	Company  *company.Module
	Topic    *topic.Module
	Language *language.Module
	Question *question.Module
}
