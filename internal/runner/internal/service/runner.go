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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/hariprasad1114/codemaster/internal/runner/internal/domain"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRunnerUnavailable = errors.New("没有配置代码执行服务")
	ErrExecutorFailed    = errors.New("代码执行服务返回异常")
)

//go:generate mockgen -source=./runner.go -destination=../../mocks/runner.mock.go -package=runnermocks -typed=true Runner
type Runner interface {
	Run(ctx context.Context, req domain.RunRequest) (domain.RunResult, error)
}

// UnavailableRunner 没有执行服务的时候使用，不会伪造执行结果
type UnavailableRunner struct {
}

func (u UnavailableRunner) Run(ctx context.Context, req domain.RunRequest) (domain.RunResult, error) {
	return domain.RunResult{}, ErrRunnerUnavailable
}

// RemoteRunner 把代码交给沙箱执行服务
// 先用 stdin 执行一次，再对每个测试用例各执行一次
type RemoteRunner struct {
	endpoint    string
	client      *http.Client
	timeout     time.Duration
	concurrency int
}

func NewRemoteRunner(endpoint string, timeout time.Duration, concurrency int) *RemoteRunner {
	return newRemoteRunner(endpoint, http.DefaultClient, timeout, concurrency)
}

func newRemoteRunner(endpoint string, client *http.Client, timeout time.Duration, concurrency int) *RemoteRunner {
	if timeout <= 0 {
		timeout = time.Second * 10
	}
	if concurrency <= 0 {
		concurrency = 4
	}
	return &RemoteRunner{
		endpoint:    endpoint,
		client:      client,
		timeout:     timeout,
		concurrency: concurrency,
	}
}

func (r *RemoteRunner) Run(ctx context.Context, req domain.RunRequest) (domain.RunResult, error) {
	var stdinExec domain.Execution
	results := make([]domain.TestResult, len(req.TestCases))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)
	eg.Go(func() error {
		var err error
		stdinExec, err = r.execute(ctx, req.Language, req.Code, req.Stdin)
		return err
	})
	for i, tc := range req.TestCases {
		eg.Go(func() error {
			exec, err := r.execute(ctx, req.Language, req.Code, tc.Input)
			if err != nil {
				return err
			}
			actual := strings.TrimSpace(exec.Stdout)
			results[i] = domain.TestResult{
				Input:           tc.Input,
				Expected:        tc.Expected,
				Actual:          actual,
				Passed:          actual == strings.TrimSpace(tc.Expected),
				ExecutionTimeMs: exec.TimeMs,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.RunResult{}, err
	}
	res := domain.RunResult{
		Success:     stdinExec.ExitCode == 0,
		Output:      stdinExec.Stdout,
		TestResults: results,
	}
	if stdinExec.ExitCode != 0 {
		res.Error = stdinExec.Stderr
	}
	for _, tr := range results {
		if !tr.Passed {
			res.Success = false
			break
		}
	}
	return res, nil
}

func (r *RemoteRunner) execute(ctx context.Context, language, code, stdin string) (domain.Execution, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	resp := httpx.NewRequest(ctx, http.MethodPost, r.endpoint).
		Client(r.client).
		JSONBody(ExecuteReq{
			Language: language,
			Code:     code,
			Stdin:    stdin,
		}).Do()
	// 请求没有发出去的时候 Response 为 nil，错误由 JSONScan 返回
	if resp.Response != nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			var detail struct {
				Error string `json:"error"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&detail)
			if detail.Error != "" {
				return domain.Execution{}, fmt.Errorf("%w: HTTP状态码=%d, %s", ErrExecutorFailed, resp.StatusCode, detail.Error)
			}
			return domain.Execution{}, fmt.Errorf("%w: HTTP状态码=%d", ErrExecutorFailed, resp.StatusCode)
		}
	}
	var res ExecuteResp
	if err := resp.JSONScan(&res); err != nil {
		return domain.Execution{}, err
	}
	return domain.Execution{
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
		TimeMs:   res.TimeMs,
	}, nil
}

type ExecuteReq struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Stdin    string `json:"stdin"`
}

type ExecuteResp struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exitCode"`
	TimeMs   int64  `json:"timeMs"`
}
