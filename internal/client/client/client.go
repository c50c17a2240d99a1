package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/portal/internal/client/api"
)

type Client interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (AuthResult, error)
	CanRegister(ctx context.Context, username string) (bool, error)
	GetUser(ctx context.Context) (UserInfo, error)
	UpdateUserInfo(ctx context.Context, req UpdateUserInfoRequest) error
	UpdateAvatar(ctx context.Context, avatarURL string) error
	UpdatePassword(ctx context.Context, oldPassword, newPassword string) error
}

// Endpoint paths, relative to the pipeline base URL.
const (
	PathRegister       = "/auth/register"
	PathLogin          = "/auth/login"
	PathCanRegister    = "/auth/canRegister"
	PathGetUser        = "/user/getUser"
	PathUpdateUserInfo = "/user/updateUserInfo"
	PathUpdateAvatar   = "/user/updateAvatar"
	PathUpdatePassword = "/user/updatePassword"
)

type HTTPClient struct {
	pipeline *api.Pipeline
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(p *api.Pipeline) *HTTPClient {
	return &HTTPClient{pipeline: p}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	return api.Do[AuthResult](ctx, c.pipeline, api.Request{Method: http.MethodPost, Path: PathRegister, Body: req})
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	return api.Do[AuthResult](ctx, c.pipeline, api.Request{Method: http.MethodPost, Path: PathLogin, Body: req})
}

// CanRegister reports whether username is still free.
func (c *HTTPClient) CanRegister(ctx context.Context, username string) (bool, error) {
	return api.Do[bool](ctx, c.pipeline, api.Request{
		Method: http.MethodGet,
		Path:   PathCanRegister,
		Query:  url.Values{"username": {username}},
	})
}

func (c *HTTPClient) GetUser(ctx context.Context) (UserInfo, error) {
	return api.Do[UserInfo](ctx, c.pipeline, api.Request{Method: http.MethodGet, Path: PathGetUser})
}

func (c *HTTPClient) UpdateUserInfo(ctx context.Context, req UpdateUserInfoRequest) error {
	return api.Call(ctx, c.pipeline, api.Request{Method: http.MethodPut, Path: PathUpdateUserInfo, Body: req})
}

func (c *HTTPClient) UpdateAvatar(ctx context.Context, avatarURL string) error {
	return api.Call(ctx, c.pipeline, api.Request{
		Method: http.MethodPatch,
		Path:   PathUpdateAvatar,
		Body:   updateAvatarRequest{AvatarURL: avatarURL},
	})
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	return api.Call(ctx, c.pipeline, api.Request{
		Method: http.MethodPatch,
		Path:   PathUpdatePassword,
		Body:   updatePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword},
	})
}
