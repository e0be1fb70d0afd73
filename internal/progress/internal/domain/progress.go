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

type Progress struct {
	Id       int64
	Uid      int64
	Qid      int64
	Solved   bool
	Attempts int
	// 0 代表从来没有尝试过
	LastAttemptAt int64
	// BestTime 是最快的一次完成耗时，单位毫秒，0 代表还没有完成过
	BestTime int64
	Ctime    int64
	Utime    int64
}

// ProgressUpdate 只有非 nil 的字段会被写入
type ProgressUpdate struct {
	Solved        *bool
	Attempts      *int
	LastAttemptAt *int64
	BestTime      *int64
}
