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

package web

import "github.com/hariprasad1114/codemaster/internal/runner/internal/domain"

type RunReq struct {
	Code       string     `json:"code" binding:"required"`
	Language   string     `json:"language" binding:"required"`
	Stdin      string     `json:"stdin,omitempty"`
	QuestionId int64      `json:"questionId,omitempty"`
	TestCases  []TestCase `json:"testCases,omitempty"`
}

type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

type RunResult struct {
	Success     bool         `json:"success"`
	Output      string       `json:"output"`
	Error       string       `json:"error,omitempty"`
	TestResults []TestResult `json:"testResults"`
}

type TestResult struct {
	Input           string `json:"input"`
	Expected        string `json:"expected"`
	Actual          string `json:"actual"`
	Passed          bool   `json:"passed"`
	ExecutionTimeMs int64  `json:"executionTime"`
}

func newRunResult(r domain.RunResult) RunResult {
	results := make([]TestResult, 0, len(r.TestResults))
	for _, tr := range r.TestResults {
		results = append(results, TestResult{
			Input:           tr.Input,
			Expected:        tr.Expected,
			Actual:          tr.Actual,
			Passed:          tr.Passed,
			ExecutionTimeMs: tr.ExecutionTimeMs,
		})
	}
	return RunResult{
		Success:     r.Success,
		Output:      r.Output,
		Error:       r.Error,
		TestResults: results,
	}
}
