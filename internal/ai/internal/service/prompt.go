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

import "fmt"

const (
	explainCodeSystemPrompt = `You are an expert programming tutor. Analyze the provided %s code and provide a comprehensive explanation. Respond with JSON in this format: { "overview": "string", "stepByStep": ["string"], "timeComplexity": "string", "spaceComplexity": "string", "keyConcepts": ["string"] }`
	explainCodePrompt       = "Explain this %s code step by step:\n\n%s"

	visualizeSystemPrompt = `You are an expert algorithm visualizer. Create a step-by-step visualization for the given algorithm and problem. Respond with JSON in this format: { "title": "string", "description": "string", "steps": [{"step": number, "description": "string", "code": "string", "visualization": "string"}], "complexity": {"time": "string", "space": "string"} }`
	visualizePrompt       = "Create a visual explanation for the %s algorithm to solve: %s. Include step-by-step code execution and describe how the data structures change at each step."

	hintsSystemPrompt = `You are a helpful coding interview mentor. Generate progressive hints for the given problem. Start with high-level approaches and gradually provide more specific guidance. Respond with JSON in this format: { "hints": ["string"] }`
	hintsPrompt       = "Generate 3-5 progressive hints for this %s difficulty problem:\n\nTitle: %s\n\nDescription: %s"
)

func explainCodePrompts(code, language string) (string, string) {
	return fmt.Sprintf(explainCodeSystemPrompt, language),
		fmt.Sprintf(explainCodePrompt, language, code)
}

func visualizePrompts(algorithm, problemDescription string) (string, string) {
	return visualizeSystemPrompt,
		fmt.Sprintf(visualizePrompt, algorithm, problemDescription)
}

func hintsPrompts(title, description, difficulty string) (string, string) {
	return hintsSystemPrompt,
		fmt.Sprintf(hintsPrompt, difficulty, title, description)
}
