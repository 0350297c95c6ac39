package session

import (
	"context"

	"github.com/Donghyun-K/board-client/internal/client/models"
)

// State is the coarse session state derived from a Snapshot.
type State int

const (
	// LoggedOut means no credential is held.
	LoggedOut State = iota
	// PendingIdentity means a credential is held but its identity is not resolved yet.
	PendingIdentity
	// Authenticated means a credential is held and its identity is resolved.
	Authenticated
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged out"
	case PendingIdentity:
		return "pending identity"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// Snapshot is a read-only copy of the session. User is never set while
// Authenticated is false.
type Snapshot struct {
	Authenticated bool
	User          *models.Identity
	// Generation changes on every login, logout and reset, so two snapshots
	// with equal generations belong to the same state entry.
	Generation uint64
}

func (s Snapshot) State() State {
	switch {
	case !s.Authenticated:
		return LoggedOut
	case s.User == nil:
		return PendingIdentity
	default:
		return Authenticated
	}
}

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(path string)
}

// IdentityResolver asks the API who the stored credential belongs to.
// client.Client satisfies it.
type IdentityResolver interface {
	Me(ctx context.Context) (*models.Identity, error)
}
