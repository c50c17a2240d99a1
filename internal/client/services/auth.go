// Package services contains application services for the portal client.
// This file defines the authentication service: register, login, logout and
// the username availability probe, keeping the session store in step with
// the backend.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portal/internal/client/client"
	"github.com/dmitrijs2005/portal/internal/client/nav"
	"github.com/dmitrijs2005/portal/internal/client/session"
)

// SessionStore is the part of session.Store the services write to.
type SessionStore interface {
	Profile() session.Profile
	SetCredential(ctx context.Context, token string)
	ClearCredential(ctx context.Context)
	SetProfile(ctx context.Context, p session.Profile)
	ClearProfile(ctx context.Context)
	UpdateProfile(ctx context.Context, fn func(p *session.Profile)) (session.Profile, bool)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account and start a session with it.
//   - Login: authenticate and start a session.
//   - Logout: drop the local session and return to the login screen.
//   - CanRegister: ask whether a username is still free.
//
// Failed calls have already been reported to the user by the request
// pipeline; the returned error is for control flow only.
type AuthService interface {
	Register(ctx context.Context, req client.RegisterRequest) (session.Profile, error)
	Login(ctx context.Context, username, password string) (session.Profile, error)
	Logout(ctx context.Context)
	CanRegister(ctx context.Context, username string) (bool, error)
}

type authService struct {
	client client.Client
	store  SessionStore
	nav    nav.Redirector
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store and redirector.
func NewAuthService(c client.Client, store SessionStore, r nav.Redirector) AuthService {
	return &authService{client: c, store: store, nav: r}
}

func (a *authService) Register(ctx context.Context, req client.RegisterRequest) (session.Profile, error) {
	res, err := a.client.Register(ctx, req)
	if err != nil {
		return session.Profile{}, fmt.Errorf("register error: %w", err)
	}
	return a.start(ctx, res)
}

func (a *authService) Login(ctx context.Context, username, password string) (session.Profile, error) {
	res, err := a.client.Login(ctx, client.LoginRequest{Username: username, Password: password})
	if err != nil {
		return session.Profile{}, fmt.Errorf("login error: %w", err)
	}
	return a.start(ctx, res)
}

// start stores the credential and profile from a successful register/login
// and moves to the home screen.
func (a *authService) start(ctx context.Context, res client.AuthResult) (session.Profile, error) {
	if res.Token == "" {
		return session.Profile{}, client.ErrEmptyToken
	}
	p := ProfileFromUser(res.User)
	a.store.SetCredential(ctx, res.Token)
	a.store.SetProfile(ctx, p)
	a.nav.Redirect(ctx, nav.HomePath)
	return p, nil
}

// Logout is local only: the backend keeps no session to end.
func (a *authService) Logout(ctx context.Context) {
	a.store.ClearCredential(ctx)
	a.store.ClearProfile(ctx)
	a.nav.Redirect(ctx, nav.LoginPath)
}

func (a *authService) CanRegister(ctx context.Context, username string) (bool, error) {
	return a.client.CanRegister(ctx, username)
}

// ProfileFromUser converts the backend user record to the cached profile.
func ProfileFromUser(u client.UserInfo) session.Profile {
	return session.Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
	}
}
