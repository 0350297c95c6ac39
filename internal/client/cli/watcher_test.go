package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/client/session"
)

func TestTransition(t *testing.T) {
	alice := &models.Identity{ID: 1, Username: "alice"}
	bob := &models.Identity{ID: 2, Username: "bob"}

	tests := []struct {
		name      string
		prev, cur session.Snapshot
		want      string
	}{
		{
			name: "identity resolved",
			prev: session.Snapshot{Authenticated: true, Generation: 1},
			cur:  session.Snapshot{Authenticated: true, User: alice, Generation: 1},
			want: "signed in as alice",
		},
		{
			name: "logout",
			prev: session.Snapshot{Authenticated: true, User: alice, Generation: 1},
			cur:  session.Snapshot{Generation: 2},
			want: "session ended",
		},
		{
			name: "rejected while pending",
			prev: session.Snapshot{Authenticated: true, Generation: 1},
			cur:  session.Snapshot{Generation: 2},
			want: "session ended",
		},
		{
			name: "pending after login is quiet",
			prev: session.Snapshot{Generation: 0},
			cur:  session.Snapshot{Authenticated: true, Generation: 1},
		},
		{
			name: "re-login skipped the pending state",
			prev: session.Snapshot{Authenticated: true, User: alice, Generation: 1},
			cur:  session.Snapshot{Authenticated: true, User: bob, Generation: 2},
			want: "signed in as bob",
		},
		{
			name: "unchanged",
			prev: session.Snapshot{Authenticated: true, User: alice, Generation: 1},
			cur:  session.Snapshot{Authenticated: true, User: alice, Generation: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transition(tt.prev, tt.cur))
		})
	}
}

func TestWatchSession_SkipsBaselineAndStopsOnClose(t *testing.T) {
	updates := make(chan session.Snapshot, 3)
	updates <- session.Snapshot{Authenticated: true, User: &models.Identity{Username: "alice"}, Generation: 1}
	updates <- session.Snapshot{Generation: 2}
	close(updates)

	var got []string
	watchSession(context.Background(), updates, func(msg string) { got = append(got, msg) })

	assert.Equal(t, []string{"session ended"}, got)
}

func TestWatchSession_StopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		watchSession(ctx, make(chan session.Snapshot), func(string) {})
	}()
	<-done
}
