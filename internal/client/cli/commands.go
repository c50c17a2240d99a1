package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portal/internal/client/api"
	"github.com/dmitrijs2005/portal/internal/client/client"
	"github.com/dmitrijs2005/portal/internal/client/services"
	"github.com/dmitrijs2005/portal/internal/client/session"
	"github.com/dmitrijs2005/portal/internal/timex"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

var errPasswordMismatch = errors.New("passwords do not match")

// report prints err unless the request pipeline already showed it, and
// returns it unchanged.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var be *api.BusinessError
	var te *api.TransportError
	switch {
	case errors.As(err, &be), errors.As(err, &te):
	case errors.Is(err, context.Canceled):
	case errors.Is(err, services.ErrSessionEnded):
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	a.log.Debug(ctx, "command failed", "error", err)
	return err
}

// readNewPassword asks for a password twice.
func (a *App) readNewPassword(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}

	confirm, err := getPassword("Repeat password", a.out)
	if err != nil {
		return "", err
	}

	if len(pw) == 0 {
		return "", errors.New("password must not be empty")
	}
	if string(pw) != string(confirm) {
		return "", errPasswordMismatch
	}
	return string(pw), nil
}

// Register checks that the username is free, collects the account details
// and creates the account. On success the new session is active.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	free, err := a.auth.CanRegister(ctx, username)
	if err != nil {
		return a.report(ctx, err)
	}
	if !free {
		fmt.Fprintf(a.out, "Username %q is already taken\n", username)
		return nil
	}

	password, err := a.readNewPassword("Enter password")
	if err != nil {
		return a.report(ctx, err)
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	phone, err := getSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	p, err := a.auth.Register(ctx, client.RegisterRequest{Username: username, Password: password, Email: email, Phone: phone})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", p.Username)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	p, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", p.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the cached profile and what can be read from the credential
// without asking the server.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.store.Snapshot()
	if !st.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	a.printProfile(st.Profile)

	if info, ok := session.InspectCredential(st.Token); ok {
		fmt.Fprintf(a.out, "Subject:   %s\n", orDash(info.Subject))
		fmt.Fprintf(a.out, "Issued:    %s\n", timex.FormatTime(info.IssuedAt))
		expires := timex.FormatTime(info.ExpiresAt)
		if info.Expired(a.now()) {
			expires += " (expired)"
		}
		fmt.Fprintf(a.out, "Expires:   %s\n", expires)
	}

	if a.stateRepo != nil {
		saved, err := a.stateRepo.Touched(ctx, session.BlobName)
		if err != nil {
			a.log.Warn(ctx, "could not read session timestamp", "error", err)
		} else {
			fmt.Fprintf(a.out, "Saved:     %s\n", timex.FormatTime(saved))
		}
	}
	return nil
}

// Profile reloads the profile from the server and prints it.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Refresh(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	a.printProfile(p)
	return nil
}

// Edit prompts for the editable fields, offering the cached values as defaults.
func (a *App) Edit(ctx context.Context) error {
	cur := a.store.Profile()

	username, err := getTextWithDefault(a.reader, "Username", cur.Username, a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	email, err := getTextWithDefault(a.reader, "Email", cur.Email, a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	phone, err := getTextWithDefault(a.reader, "Phone", cur.Phone, a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	if _, err := a.profile.Update(ctx, services.ProfileUpdate{Username: username, Email: email, Phone: phone}); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

func (a *App) Avatar(ctx context.Context) error {
	url, err := getTextWithDefault(a.reader, "Avatar URL", a.store.Profile().AvatarURL, a.out)
	if err != nil {
		return a.report(ctx, err)
	}
	if url == "" {
		fmt.Fprintln(a.out, "Avatar URL is required")
		return nil
	}

	if _, err := a.profile.UpdateAvatar(ctx, url); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Avatar updated")
	return nil
}

func (a *App) Password(ctx context.Context) error {
	old, err := getPassword("Current password", a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	next, err := a.readNewPassword("New password")
	if err != nil {
		return a.report(ctx, err)
	}

	if err := a.profile.UpdatePassword(ctx, string(old), next); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

// Check asks the server whether username can still be registered.
func (a *App) Check(ctx context.Context, username string) error {
	free, err := a.auth.CanRegister(ctx, username)
	if err != nil {
		return a.report(ctx, err)
	}
	if free {
		fmt.Fprintf(a.out, "%q is available\n", username)
	} else {
		fmt.Fprintf(a.out, "%q is taken\n", username)
	}
	return nil
}

func (a *App) printProfile(p session.Profile) {
	fmt.Fprintf(a.out, "ID:        %s\n", orDash(p.ID))
	fmt.Fprintf(a.out, "Username:  %s\n", orDash(p.Username))
	fmt.Fprintf(a.out, "Email:     %s\n", orDash(p.Email))
	fmt.Fprintf(a.out, "Phone:     %s\n", orDash(p.Phone))
	fmt.Fprintf(a.out, "Avatar:    %s\n", orDash(p.AvatarURL))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
