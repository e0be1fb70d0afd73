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

package slugx

import (
	"github.com/gosimple/slug"
)

// numericPrefix 加在纯数字的生成结果前面
const numericPrefix = "n-"

// OrDerive 调用方没有给 slug 的时候，从 source 生成一个
// 生成结果不会是纯数字
func OrDerive(s string, source string) string {
	if s != "" {
		return s
	}
	res := slug.Make(source)
	if numeric(res) {
		return numericPrefix + res
	}
	return res
}

// Valid 纯数字的 slug 不合法，路由里纯数字的参数按照 id 解析
func Valid(s string) bool {
	return slug.IsSlug(s) && !numeric(s)
}

func numeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
