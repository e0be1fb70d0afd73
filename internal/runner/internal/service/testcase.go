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

package service

import (
	"bytes"
	"encoding/json"

	"github.com/hariprasad1114/codemaster/internal/runner/internal/domain"
	"github.com/pkg/errors"
)

// ParseTestCases 解析题目上存储的测试用例，格式为 [{"input": ..., "expected": ...}]
// input 和 expected 如果不是字符串，就保留原始的 JSON 文本
func ParseTestCases(raw json.RawMessage) ([]domain.TestCase, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var items []struct {
		Input    json.RawMessage `json:"input"`
		Expected json.RawMessage `json:"expected"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "测试用例格式错误")
	}
	res := make([]domain.TestCase, 0, len(items))
	for _, item := range items {
		res = append(res, domain.TestCase{
			Input:    rawText(item.Input),
			Expected: rawText(item.Expected),
		})
	}
	return res, nil
}

func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return string(raw)
}
