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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/hariprasad1114/codemaster/internal/ai/internal/domain"
)

type ExplainCodeReq struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
}

type VisualizeAlgorithmReq struct {
	Algorithm          string `json:"algorithm" binding:"required"`
	ProblemDescription string `json:"problemDescription" binding:"required"`
}

type GenerateHintsReq struct {
	ProblemTitle       string `json:"problemTitle" binding:"required"`
	ProblemDescription string `json:"problemDescription" binding:"required"`
	Difficulty         string `json:"difficulty" binding:"required"`
}

type CodeExplanation struct {
	Overview        string   `json:"overview"`
	StepByStep      []string `json:"stepByStep"`
	TimeComplexity  string   `json:"timeComplexity"`
	SpaceComplexity string   `json:"spaceComplexity"`
	KeyConcepts     []string `json:"keyConcepts"`
}

func newCodeExplanation(e domain.CodeExplanation) CodeExplanation {
	return CodeExplanation{
		Overview:        e.Overview,
		StepByStep:      e.StepByStep,
		TimeComplexity:  e.TimeComplexity,
		SpaceComplexity: e.SpaceComplexity,
		KeyConcepts:     e.KeyConcepts,
	}
}

type AlgorithmVisualization struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Steps       []VisualizationStep `json:"steps"`
	Complexity  Complexity          `json:"complexity"`
}

type VisualizationStep struct {
	Step          int    `json:"step"`
	Description   string `json:"description"`
	Code          string `json:"code"`
	Visualization string `json:"visualization"`
}

type Complexity struct {
	Time  string `json:"time"`
	Space string `json:"space"`
}

func newAlgorithmVisualization(v domain.AlgorithmVisualization) AlgorithmVisualization {
	return AlgorithmVisualization{
		Title:       v.Title,
		Description: v.Description,
		Steps: slice.Map(v.Steps, func(idx int, src domain.VisualizationStep) VisualizationStep {
			return VisualizationStep{
				Step:          src.Step,
				Description:   src.Description,
				Code:          src.Code,
				Visualization: src.Visualization,
			}
		}),
		Complexity: Complexity{
			Time:  v.Complexity.Time,
			Space: v.Complexity.Space,
		},
	}
}

type Hints struct {
	Hints []string `json:"hints"`
}
