// Package credentials persists the single bearer token of the client.
//
// The store is a one-slot vault: at most one token exists per client
// database. An absent token is the normal logged-out state, so Get reports it
// with ok == false instead of an error.
package credentials

import (
	"context"
	"errors"
	"time"
)

const (
	TokenKey   = "access_token"
	SavedAtKey = "access_token_saved_at"
)

var ErrEmptyToken = errors.New("empty token")

type Store interface {
	// Set replaces the stored token. An empty token is rejected.
	Set(ctx context.Context, token string) error
	// Get returns the stored token; ok is false when there is none.
	Get(ctx context.Context) (token string, ok bool, err error)
	// SavedAt reports when the current token was stored.
	SavedAt(ctx context.Context) (at time.Time, ok bool, err error)
	// Clear removes the token. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
