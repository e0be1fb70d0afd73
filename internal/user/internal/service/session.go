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
	"time"

	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"github.com/hariprasad1114/codemaster/internal/user/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

// SessionTTL 和 ginx session 的过期时间保持一致
const SessionTTL = time.Hour * 24 * 7

var (
	ErrSessionExpired = errors.New("会话已过期")
	ErrInvalidState   = errors.New("state 不合法")
)

//go:generate mockgen -source=./session.go -package=svcmocks -destination=mocks/session.mock.go -typed SessionService
//go:generate mockgen -source=./session.go -package=usermocks -destination=../../mocks/session.mock.go -typed SessionService
type SessionService interface {
	// NewState 生成登录用的 state
	NewState(ctx context.Context) (string, error)
	// VerifyState 校验并消费 state
	VerifyState(ctx context.Context, state string) error
	Record(ctx context.Context, sid string, uid int64, data map[string]string) error
	// Check 会话不存在或者已经过期都返回 ErrSessionExpired
	Check(ctx context.Context, sid string) (domain.Session, error)
	Remove(ctx context.Context, sid string) error
	// CleanExpired 删除一批过期的记录，返回删除的数量
	CleanExpired(ctx context.Context, limit int) (int64, error)
}

type sessionService struct {
	repo repository.SessionRepository
	ttl  time.Duration
}

func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{
		repo: repo,
		ttl:  SessionTTL,
	}
}

func (s *sessionService) NewState(ctx context.Context) (string, error) {
	state := shortuuid.New()
	return state, s.repo.SaveState(ctx, state)
}

func (s *sessionService) VerifyState(ctx context.Context, state string) error {
	if state == "" {
		return ErrInvalidState
	}
	ok, err := s.repo.ConsumeState(ctx, state)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	return nil
}

func (s *sessionService) Record(ctx context.Context, sid string, uid int64, data map[string]string) error {
	return s.repo.Create(ctx, domain.Session{
		Sid:    sid,
		Uid:    uid,
		Expire: time.Now().Add(s.ttl).UnixMilli(),
	}, data)
}

func (s *sessionService) Check(ctx context.Context, sid string) (domain.Session, error) {
	sess, err := s.repo.Find(ctx, sid)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Session{}, ErrSessionExpired
	case err != nil:
		return domain.Session{}, err
	}
	if sess.Expire <= time.Now().UnixMilli() {
		return domain.Session{}, ErrSessionExpired
	}
	return sess, nil
}

func (s *sessionService) Remove(ctx context.Context, sid string) error {
	return s.repo.Delete(ctx, sid)
}

func (s *sessionService) CleanExpired(ctx context.Context, limit int) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now().UnixMilli(), limit)
}
