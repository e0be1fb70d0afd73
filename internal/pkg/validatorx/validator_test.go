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

package validatorx

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type slugReq struct {
	Slug string `binding:"omitempty,slug"`
}

func TestRegister(t *testing.T) {
	Register()
	// 重复注册不会出问题
	Register()
	assert.NoError(t, binding.Validator.ValidateStruct(slugReq{Slug: "two-sum"}))
	assert.NoError(t, binding.Validator.ValidateStruct(slugReq{}))
	assert.Error(t, binding.Validator.ValidateStruct(slugReq{Slug: "Two Sum"}))
	// 纯数字会被当成 id
	assert.Error(t, binding.Validator.ValidateStruct(slugReq{Slug: "1"}))
}
