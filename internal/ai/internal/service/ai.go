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
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hariprasad1114/codemaster/internal/ai/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/service/llm"
	"github.com/lithammer/shortuuid/v4"
	"github.com/tidwall/gjson"
)

const (
	// 大模型有时候会用 ```json ``` 包裹
	jsonExpr = `\{(?s:.*)\}`

	notSpecified = "Not specified"
)

var (
	jsonRegexp = regexp.MustCompile(jsonExpr)

	errNoJSON      = errors.New("大模型的回答中没有 JSON 对象")
	errInvalidJSON = errors.New("大模型的回答不是合法的 JSON")
)

//go:generate mockgen -source=./ai.go -destination=../../mocks/ai.mock.go -package=aimocks -typed=true Service
type Service interface {
	ExplainCode(ctx context.Context, uid int64, code, language string) (domain.CodeExplanation, error)
	GenerateAlgorithmVisualization(ctx context.Context, uid int64, algorithm, problemDescription string) (domain.AlgorithmVisualization, error)
	GenerateProblemHints(ctx context.Context, uid int64, title, description, difficulty string) ([]string, error)
}

type service struct {
	llmSvc llm.Service
}

func NewService(llmSvc llm.Service) Service {
	return &service{
		llmSvc: llmSvc,
	}
}

func (s *service) ExplainCode(ctx context.Context, uid int64, code, language string) (domain.CodeExplanation, error) {
	sys, prompt := explainCodePrompts(code, language)
	res, err := s.invoke(ctx, domain.LLMRequest{
		Uid:          uid,
		Biz:          domain.BizExplainCode,
		Input:        []string{code, language},
		SystemPrompt: sys,
		Prompt:       prompt,
	})
	if err != nil {
		return domain.CodeExplanation{}, fmt.Errorf("failed to explain code: %w", err)
	}
	return domain.CodeExplanation{
		Overview:        stringOf(res.Get("overview"), "Unable to generate overview"),
		StepByStep:      stringsOf(res.Get("stepByStep")),
		TimeComplexity:  stringOf(res.Get("timeComplexity"), notSpecified),
		SpaceComplexity: stringOf(res.Get("spaceComplexity"), notSpecified),
		KeyConcepts:     stringsOf(res.Get("keyConcepts")),
	}, nil
}

func (s *service) GenerateAlgorithmVisualization(ctx context.Context, uid int64,
	algorithm, problemDescription string) (domain.AlgorithmVisualization, error) {
	sys, prompt := visualizePrompts(algorithm, problemDescription)
	res, err := s.invoke(ctx, domain.LLMRequest{
		Uid:          uid,
		Biz:          domain.BizVisualizeAlgorithm,
		Input:        []string{algorithm, problemDescription},
		SystemPrompt: sys,
		Prompt:       prompt,
	})
	if err != nil {
		return domain.AlgorithmVisualization{}, fmt.Errorf("failed to generate algorithm visualization: %w", err)
	}
	steps := make([]domain.VisualizationStep, 0)
	if arr := res.Get("steps"); arr.IsArray() {
		for _, st := range arr.Array() {
			if !st.IsObject() {
				continue
			}
			step := int(st.Get("step").Int())
			if step <= 0 {
				// 序号缺失或者无法解析，按出现顺序编号
				step = len(steps) + 1
			}
			steps = append(steps, domain.VisualizationStep{
				Step:          step,
				Description:   stringOf(st.Get("description"), ""),
				Code:          stringOf(st.Get("code"), ""),
				Visualization: stringOf(st.Get("visualization"), ""),
			})
		}
	}
	complexity := res.Get("complexity")
	return domain.AlgorithmVisualization{
		Title:       stringOf(res.Get("title"), algorithm),
		Description: stringOf(res.Get("description"), "Algorithm visualization"),
		Steps:       steps,
		Complexity: domain.Complexity{
			Time:  stringOf(complexity.Get("time"), notSpecified),
			Space: stringOf(complexity.Get("space"), notSpecified),
		},
	}, nil
}

func (s *service) GenerateProblemHints(ctx context.Context, uid int64,
	title, description, difficulty string) ([]string, error) {
	sys, prompt := hintsPrompts(title, description, difficulty)
	res, err := s.invoke(ctx, domain.LLMRequest{
		Uid:          uid,
		Biz:          domain.BizGenerateHints,
		Input:        []string{title, description, difficulty},
		SystemPrompt: sys,
		Prompt:       prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate hints: %w", err)
	}
	return stringsOf(res.Get("hints")), nil
}

// invoke 调用一次大模型，不重试，返回回答里的 JSON 对象
// 字段逐个读取，类型不对的字段由调用方使用默认值
func (s *service) invoke(ctx context.Context, req domain.LLMRequest) (gjson.Result, error) {
	req.Tid = shortuuid.New()
	resp, err := s.llmSvc.Invoke(ctx, req)
	if err != nil {
		return gjson.Result{}, err
	}
	answer := strings.TrimSpace(resp.Answer)
	if answer == "" {
		answer = "{}"
	}
	data := jsonRegexp.FindString(answer)
	if data == "" {
		return gjson.Result{}, errNoJSON
	}
	if !gjson.Valid(data) {
		return gjson.Result{}, errInvalidJSON
	}
	return gjson.Parse(data), nil
}

// stringOf 读取标量字段，对象、数组、null 和空字符串都使用 def
func stringOf(res gjson.Result, def string) string {
	switch res.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		if val := res.String(); val != "" {
			return val
		}
	}
	return def
}

// stringsOf 读取字符串列表，单个字符串当作只有一个元素的列表
func stringsOf(res gjson.Result) []string {
	vals := make([]string, 0)
	if !res.IsArray() {
		if val := stringOf(res, ""); val != "" {
			vals = append(vals, val)
		}
		return vals
	}
	for _, item := range res.Array() {
		if val := stringOf(item, ""); val != "" {
			vals = append(vals, val)
		}
	}
	return vals
}
