// Package guard gates protected screens on the session state.
package guard

import (
	"context"
	"sync"

	"github.com/Donghyun-K/board-client/internal/client/routes"
	"github.com/Donghyun-K/board-client/internal/client/session"
	"github.com/Donghyun-K/board-client/internal/logging"
)

// Sessions is the part of *session.Manager the guard reads.
type Sessions interface {
	Snapshot() session.Snapshot
	EnsureIdentity(ctx context.Context) bool
}

type Guard struct {
	sessions Sessions
	nav      session.Navigator
	log      logging.Logger

	mu           sync.Mutex
	redirected   bool
	redirectedAt uint64
}

func New(sessions Sessions, nav session.Navigator, log logging.Logger) *Guard {
	return &Guard{sessions: sessions, nav: nav, log: log.With("component", "guard")}
}

// Allow reports whether a protected screen may render. A logged-out viewer is
// sent to the login screen, once per logged-out state entry, and false is
// returned. A pending session is allowed through and its identity lookup is
// retried if the previous attempt failed.
func (g *Guard) Allow(ctx context.Context) bool {
	s := g.sessions.Snapshot()
	if !s.Authenticated {
		g.redirect(ctx, s.Generation)
		return false
	}
	if s.User == nil {
		g.sessions.EnsureIdentity(ctx)
	}
	return true
}

func (g *Guard) redirect(ctx context.Context, gen uint64) {
	g.mu.Lock()
	if g.redirected && g.redirectedAt == gen {
		g.mu.Unlock()
		return
	}
	g.redirected = true
	g.redirectedAt = gen
	g.mu.Unlock()

	g.log.Debug(ctx, "not logged in, redirecting", "to", routes.Login)
	g.nav.Navigate(routes.Login)
}
