package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portal/internal/client/client"
	"github.com/dmitrijs2005/portal/internal/client/session"
)

var (
	ErrNoProfile = errors.New("no profile loaded, log in first")
	// ErrSessionEnded is returned when the session was dropped while the
	// request was in flight; the answer is discarded.
	ErrSessionEnded = errors.New("session ended, log in again")
)

// ProfileUpdate holds the editable profile fields.
type ProfileUpdate struct {
	Username string
	Email    string
	Phone    string
}

// ProfileService reads and edits the signed-in user's profile. The cached
// profile changes only after the backend accepted the change.
type ProfileService interface {
	Refresh(ctx context.Context) (session.Profile, error)
	Update(ctx context.Context, upd ProfileUpdate) (session.Profile, error)
	UpdateAvatar(ctx context.Context, avatarURL string) (session.Profile, error)
	UpdatePassword(ctx context.Context, oldPassword, newPassword string) error
}

type profileService struct {
	client client.Client
	store  SessionStore
}

func NewProfileService(c client.Client, store SessionStore) ProfileService {
	return &profileService{client: c, store: store}
}

// Refresh reloads the profile from the backend.
func (s *profileService) Refresh(ctx context.Context) (session.Profile, error) {
	u, err := s.client.GetUser(ctx)
	if err != nil {
		return session.Profile{}, fmt.Errorf("get user error: %w", err)
	}
	p, ok := s.store.UpdateProfile(ctx, func(cur *session.Profile) { *cur = ProfileFromUser(u) })
	if !ok {
		return session.Profile{}, ErrSessionEnded
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, upd ProfileUpdate) (session.Profile, error) {
	p := s.store.Profile()
	if p.ID == "" {
		return session.Profile{}, ErrNoProfile
	}

	req := client.UpdateUserInfoRequest{ID: p.ID, Username: upd.Username, Email: upd.Email, Phone: upd.Phone}
	if err := s.client.UpdateUserInfo(ctx, req); err != nil {
		return session.Profile{}, fmt.Errorf("update user info error: %w", err)
	}

	p, ok := s.store.UpdateProfile(ctx, func(cur *session.Profile) {
		cur.Username, cur.Email, cur.Phone = upd.Username, upd.Email, upd.Phone
	})
	if !ok {
		return session.Profile{}, ErrSessionEnded
	}
	return p, nil
}

func (s *profileService) UpdateAvatar(ctx context.Context, avatarURL string) (session.Profile, error) {
	p := s.store.Profile()
	if p.ID == "" {
		return session.Profile{}, ErrNoProfile
	}
	if err := s.client.UpdateAvatar(ctx, avatarURL); err != nil {
		return session.Profile{}, fmt.Errorf("update avatar error: %w", err)
	}
	p, ok := s.store.UpdateProfile(ctx, func(cur *session.Profile) { cur.AvatarURL = avatarURL })
	if !ok {
		return session.Profile{}, ErrSessionEnded
	}
	return p, nil
}

func (s *profileService) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := s.client.UpdatePassword(ctx, oldPassword, newPassword); err != nil {
		return fmt.Errorf("update password error: %w", err)
	}
	return nil
}
