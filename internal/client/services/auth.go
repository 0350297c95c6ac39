// Package services contains the application services behind the CLI screens.
// They validate input, call the board API and, for authentication, hand the
// resulting credential to the session manager.
package services

import (
	"context"
	"fmt"

	"github.com/Donghyun-K/board-client/internal/client/client"
	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/logging"
)

// Sessions is the part of the session manager the auth service drives.
type Sessions interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
//   - SignIn: exchange username/password for a token and start a session.
//   - SignUp: create an account; does not sign in.
//   - SignOut: end the session.
type AuthService interface {
	SignIn(ctx context.Context, req models.SignInRequest) error
	SignUp(ctx context.Context, req models.SignUpRequest) error
	SignOut(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions Sessions
	log      logging.Logger
}

func NewAuthService(c client.Client, sessions Sessions, log logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, log: log.With("service", "auth")}
}

func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	token, err := a.client.SignIn(ctx, req)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if err := a.sessions.Login(ctx, token); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	a.log.Info(ctx, "signed in", "username", req.Username)
	return nil
}

func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := a.client.SignUp(ctx, req); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	a.log.Info(ctx, "account created", "username", req.Username)
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}
