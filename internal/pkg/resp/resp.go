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

package resp

import (
	"net/http"

	"github.com/ecodeclub/ginx"
)

// Created 按照 201 返回新建的资源
func Created(ctx *ginx.Context, data any) (ginx.Result, error) {
	ctx.PureJSON(http.StatusCreated, ginx.Result{Data: data})
	return ginx.Result{}, ginx.ErrNoResponse
}

// Abort 用指定的状态码返回 res，ginx 的包装器不会再写响应
func Abort(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.AbortWithStatusJSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}

// Redirect 302 跳转
func Redirect(ctx *ginx.Context, location string) (ginx.Result, error) {
	ctx.Redirect(http.StatusFound, location)
	return ginx.Result{}, ginx.ErrNoResponse
}
