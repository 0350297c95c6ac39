package cli

import (
	"sync"

	"github.com/Donghyun-K/board-client/internal/client/session"
)

// Location is the CLI's router: it remembers which screen is current.
// It is the session.Navigator given to the session manager and the guard.
type Location struct {
	mu   sync.Mutex
	path string
}

var _ session.Navigator = (*Location)(nil)

func NewLocation(start string) *Location {
	return &Location{path: start}
}

func (l *Location) Navigate(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
}

func (l *Location) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}
