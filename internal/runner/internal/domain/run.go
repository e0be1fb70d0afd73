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

package domain

type RunRequest struct {
	Code      string
	Language  string
	Stdin     string
	TestCases []TestCase
}

type TestCase struct {
	Input    string
	Expected string
}

type RunResult struct {
	Success     bool
	Output      string
	Error       string
	TestResults []TestResult
}

type TestResult struct {
	Input           string
	Expected        string
	Actual          string
	Passed          bool
	ExecutionTimeMs int64
}

// Execution 一次执行的结果
type Execution struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimeMs   int64
}
