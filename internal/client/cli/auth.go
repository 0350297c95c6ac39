package cli

import (
	"context"
	"time"

	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/client/routes"
	"github.com/Donghyun-K/board-client/internal/client/session"
	"github.com/Donghyun-K/board-client/internal/client/tokeninfo"
	"github.com/Donghyun-K/board-client/internal/common"
)

// Interactive input helpers behind variables so tests can swap them.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirm       = Confirm
)

// SignUp is the sign-up screen. On success the user lands on the login screen.
func (a *App) SignUp(ctx context.Context) error {
	a.mount(ctx, routes.Signup)

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirmation, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	req := models.SignUpRequest{
		Email:           email,
		Username:        username,
		Password:        string(password),
		PasswordConfirm: string(confirmation),
	}
	if err := a.auth.SignUp(ctx, req); err != nil {
		return err
	}

	a.printf("Account created. You can log in now.\n")
	a.loc.Navigate(routes.Login)
	return nil
}

// Login is the login screen. A successful login goes to the home screen
// right away; the identity shows up in the prompt once resolved.
func (a *App) Login(ctx context.Context) error {
	a.mount(ctx, routes.Login)

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.SignIn(ctx, models.SignInRequest{Username: username, Password: string(password)}); err != nil {
		return err
	}

	a.printf("Logged in.\n")
	a.loc.Navigate(routes.Home)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

// Whoami prints the session state, the resolved identity and what the stored
// token says about itself.
func (a *App) Whoami(ctx context.Context) error {
	s := a.sessions.Snapshot()
	a.printf("state:    %s\n", s.State())

	switch s.State() {
	case session.LoggedOut:
		return nil
	case session.PendingIdentity:
		a.printf("user:     … (resolving)\n")
	case session.Authenticated:
		a.printf("user:     %s (#%d, %s)\n", s.User.Username, s.User.ID, s.User.Email)
	}

	token, ok, err := a.tokens.Get(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if at, ok, err := a.tokens.SavedAt(ctx); err == nil && ok {
		a.printf("saved:    %s\n", at.Local().Format(time.DateTime))
	}

	info, err := tokeninfo.Inspect(token)
	if err != nil {
		a.printf("token:    opaque\n")
		return nil
	}
	switch {
	case info.ExpiresAt.IsZero():
		a.printf("expires:  never\n")
	case info.Expired(time.Now()):
		a.printf("expires:  %s (expired)\n", info.ExpiresAt.Local().Format(time.DateTime))
	default:
		a.printf("expires:  %s\n", info.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}
