package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/portal/internal/client/client"
	"github.com/dmitrijs2005/portal/internal/client/session"
	"github.com/stretchr/testify/require"
)

func signedIn(t *testing.T) *session.Store {
	t.Helper()
	store := newStore(t)
	store.SetCredential(context.Background(), "tok")
	store.SetProfile(context.Background(), ProfileFromUser(alice))
	return store
}

func TestRefresh_StoresProfile(t *testing.T) {
	fresh := alice
	fresh.AvatarURL = "http://img/a.png"
	fc := &fakeClient{GetUserRet: fresh}
	store := signedIn(t)
	svc := NewProfileService(fc, store)

	p, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, "http://img/a.png", p.AvatarURL)
	require.Equal(t, p, store.Profile())
}

func TestRefresh_Error_KeepsCachedProfile(t *testing.T) {
	fc := &fakeClient{GetUserErr: errors.New("down")}
	store := signedIn(t)
	svc := NewProfileService(fc, store)

	_, err := svc.Refresh(context.Background())
	require.Error(t, err)
	require.Equal(t, ProfileFromUser(alice), store.Profile())
}

func TestUpdate_Success_StoresSubmittedValues(t *testing.T) {
	fc := &fakeClient{}
	store := signedIn(t)
	svc := NewProfileService(fc, store)

	upd := ProfileUpdate{Username: "alice2", Email: "new@example.com", Phone: "999"}
	p, err := svc.Update(context.Background(), upd)
	require.NoError(t, err)

	require.Equal(t, client.UpdateUserInfoRequest{ID: "1", Username: "alice2", Email: "new@example.com", Phone: "999"}, fc.LastUpdateUserInfo)
	require.Equal(t, session.Profile{ID: "1", Username: "alice2", Email: "new@example.com", Phone: "999"}, p)
	require.Equal(t, p, store.Profile())
}

// Scenario: the backend rejects the edit, the cached profile stays as it was.
func TestUpdate_Rejected_LeavesProfileUnchanged(t *testing.T) {
	fc := &fakeClient{UpdateUserInfoErr: errors.New("email already in use")}
	store := signedIn(t)
	svc := NewProfileService(fc, store)

	_, err := svc.Update(context.Background(), ProfileUpdate{Username: "alice", Email: "taken@example.com", Phone: "123"})
	require.ErrorContains(t, err, "email already in use")
	require.Equal(t, ProfileFromUser(alice), store.Profile())
	require.Equal(t, "tok", store.Credential())
}

func TestUpdate_NoProfile(t *testing.T) {
	fc := &fakeClient{}
	svc := NewProfileService(fc, newStore(t))

	_, err := svc.Update(context.Background(), ProfileUpdate{Username: "x"})
	require.ErrorIs(t, err, ErrNoProfile)
	require.Zero(t, fc.Calls)
}

func TestUpdateAvatar(t *testing.T) {
	fc := &fakeClient{}
	store := signedIn(t)
	svc := NewProfileService(fc, store)

	p, err := svc.UpdateAvatar(context.Background(), "http://img/b.png")
	require.NoError(t, err)
	require.Equal(t, "http://img/b.png", fc.LastAvatar)
	require.Equal(t, "http://img/b.png", p.AvatarURL)
	require.Equal(t, "http://img/b.png", store.Profile().AvatarURL)

	fc.UpdateAvatarErr = errors.New("bad url")
	_, err = svc.UpdateAvatar(context.Background(), "nope")
	require.Error(t, err)
	require.Equal(t, "http://img/b.png", store.Profile().AvatarURL)
}

func TestUpdatePassword(t *testing.T) {
	fc := &fakeClient{}
	svc := NewProfileService(fc, signedIn(t))

	require.NoError(t, svc.UpdatePassword(context.Background(), "old", "new"))
	require.Equal(t, "old", fc.LastOldPassword)
	require.Equal(t, "new", fc.LastNewPassword)

	fc.UpdatePasswordErr = errors.New("wrong")
	require.ErrorContains(t, svc.UpdatePassword(context.Background(), "x", "y"), "update password error:")
}

// A forced logout that lands while a request is in flight must not be undone
// when that request succeeds afterwards.
func TestProfileWrites_DoNotOutliveLogout(t *testing.T) {
	tests := []struct {
		name string
		call func(ctx context.Context, svc ProfileService) (session.Profile, error)
	}{
		{"refresh", func(ctx context.Context, svc ProfileService) (session.Profile, error) {
			return svc.Refresh(ctx)
		}},
		{"update", func(ctx context.Context, svc ProfileService) (session.Profile, error) {
			return svc.Update(ctx, ProfileUpdate{Username: "alice2"})
		}},
		{"avatar", func(ctx context.Context, svc ProfileService) (session.Profile, error) {
			return svc.UpdateAvatar(ctx, "http://img/c.png")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := signedIn(t)
			fc := &fakeClient{GetUserRet: alice}
			fc.InFlight = func() {
				store.ClearCredential(ctx)
				store.ClearProfile(ctx)
			}

			_, err := tt.call(ctx, NewProfileService(fc, store))
			require.ErrorIs(t, err, ErrSessionEnded)
			require.Empty(t, store.Credential())
			require.Equal(t, session.Profile{}, store.Profile())
		})
	}
}
