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

package user

import (
	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/user/internal/job"
	"github.com/hariprasad1114/codemaster/internal/user/internal/service"
	"github.com/hariprasad1114/codemaster/internal/user/internal/web"
)

type (
	Handler                 = web.Handler
	Service                 = service.UserService
	SessionService          = service.SessionService
	CleanExpiredSessionsJob = job.CleanExpiredSessionsJob
	User                    = domain.User
	Session                 = domain.Session
)

var ErrSessionExpired = service.ErrSessionExpired

const SessionTTL = service.SessionTTL

type Module struct {
	Hdl        *Handler
	Svc        Service
	SessionSvc SessionService
	CleanJob   *CleanExpiredSessionsJob
}
