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

import "github.com/hariprasad1114/codemaster/internal/progress/internal/domain"

type SaveProgressReq struct {
	Solved        *bool  `json:"solved"`
	Attempts      *int   `json:"attempts" binding:"omitempty,min=0"`
	LastAttemptAt *int64 `json:"lastAttemptAt" binding:"omitempty,min=0"`
	BestTime      *int64 `json:"bestTime" binding:"omitempty,min=0"`
}

type Progress struct {
	Id            int64 `json:"id"`
	QuestionId    int64 `json:"questionId"`
	Solved        bool  `json:"solved"`
	Attempts      int   `json:"attempts"`
	LastAttemptAt int64 `json:"lastAttemptAt,omitempty"`
	BestTime      int64 `json:"bestTime,omitempty"`
	CreatedAt     int64 `json:"createdAt"`
	UpdatedAt     int64 `json:"updatedAt"`
}

func newProgress(p domain.Progress) Progress {
	return Progress{
		Id:            p.Id,
		QuestionId:    p.Qid,
		Solved:        p.Solved,
		Attempts:      p.Attempts,
		LastAttemptAt: p.LastAttemptAt,
		BestTime:      p.BestTime,
		CreatedAt:     p.Ctime,
		UpdatedAt:     p.Utime,
	}
}
