package cli

import (
	"context"

	"github.com/Donghyun-K/board-client/internal/client/session"
)

// watchSession reports session transitions until updates is closed or ctx
// ends. The first snapshot is the baseline and is not announced.
func watchSession(ctx context.Context, updates <-chan session.Snapshot, announce func(string)) {
	var (
		prev session.Snapshot
		seen bool
	)
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-updates:
			if !ok {
				return
			}
			if seen {
				if msg := transition(prev, s); msg != "" {
					announce(msg)
				}
			}
			prev, seen = s, true
		}
	}
}

func transition(prev, cur session.Snapshot) string {
	switch {
	case prev.Authenticated && !cur.Authenticated:
		return "session ended"
	case cur.User != nil && (prev.User == nil || prev.Generation != cur.Generation):
		return "signed in as " + cur.User.Username
	}
	return ""
}
