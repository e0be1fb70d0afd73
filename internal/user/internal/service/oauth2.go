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
	"net/http"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/hariprasad1114/codemaster/internal/user/internal/domain"
	"golang.org/x/oauth2"
)

var ErrInvalidUserInfo = errors.New("身份提供方返回的用户信息缺少 sub")

//go:generate mockgen -source=./oauth2.go -package=svcmocks -destination=mocks/oauth2.mock.go -typed OAuth2Service
type OAuth2Service interface {
	AuthURL(state string) string
	// VerifyCode 用 code 换 token，再用 token 拿用户信息
	VerifyCode(ctx context.Context, code string) (domain.OIDCInfo, error)
}

type OIDCConfig struct {
	AuthURL      string   `yaml:"authURL"`
	TokenURL     string   `yaml:"tokenURL"`
	UserInfoURL  string   `yaml:"userInfoURL"`
	ClientID     string   `yaml:"clientID"`
	ClientSecret string   `yaml:"clientSecret"`
	RedirectURL  string   `yaml:"redirectURL"`
	Scopes       []string `yaml:"scopes"`
}

type OIDCOAuth2Service struct {
	cfg         *oauth2.Config
	userInfoURL string
	client      *http.Client
}

func NewOIDCOAuth2Service(cfg OIDCConfig) OAuth2Service {
	return newOIDCOAuth2Service(cfg, http.DefaultClient)
}

func newOIDCOAuth2Service(cfg OIDCConfig, client *http.Client) *OIDCOAuth2Service {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"openid", "email", "profile"}
	}
	return &OIDCOAuth2Service{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
			RedirectURL: cfg.RedirectURL,
			Scopes:      scopes,
		},
		userInfoURL: cfg.UserInfoURL,
		client:      client,
	}
}

func (s *OIDCOAuth2Service) AuthURL(state string) string {
	return s.cfg.AuthCodeURL(state)
}

func (s *OIDCOAuth2Service) VerifyCode(ctx context.Context, code string) (domain.OIDCInfo, error) {
	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := s.cfg.Exchange(tokenCtx, code)
	if err != nil {
		return domain.OIDCInfo{}, fmt.Errorf("换取 access_token 失败 %w", err)
	}
	resp := httpx.NewRequest(ctx, http.MethodGet, s.userInfoURL).
		Client(s.client).
		AddHeader("Authorization", "Bearer "+token.AccessToken).
		Do()
	if resp.Response != nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return domain.OIDCInfo{}, fmt.Errorf("获取用户信息失败 HTTP状态码=%d", resp.StatusCode)
		}
	}
	var res UserInfo
	err = resp.JSONScan(&res)
	if err != nil {
		return domain.OIDCInfo{}, fmt.Errorf("获取用户信息失败 %w", err)
	}
	if res.Sub == "" {
		return domain.OIDCInfo{}, ErrInvalidUserInfo
	}
	return domain.OIDCInfo{
		Sub:             res.Sub,
		Email:           res.Email,
		FirstName:       res.GivenName,
		LastName:        res.FamilyName,
		ProfileImageURL: res.Picture,
	}, nil
}

// UserInfo 标准的 OIDC userinfo 字段
type UserInfo struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}
