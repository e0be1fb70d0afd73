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

type User struct {
	Id int64
	// Sub 是身份提供方分配的用户标识
	Sub             string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	Ctime           int64
	Utime           int64
}

// OIDCInfo 是从身份提供方 userinfo 接口拿到的数据
type OIDCInfo struct {
	Sub             string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

type Session struct {
	Sid    string
	Uid    int64
	Expire int64
}
