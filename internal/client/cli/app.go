package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Donghyun-K/board-client/internal/client/routes"
	"github.com/Donghyun-K/board-client/internal/client/services"
	"github.com/Donghyun-K/board-client/internal/client/session"
	"github.com/Donghyun-K/board-client/internal/logging"
)

// Sessions is what the CLI needs from the session manager.
type Sessions interface {
	Initialize(ctx context.Context) error
	Snapshot() session.Snapshot
	Subscribe() (<-chan session.Snapshot, func())
}

// Guard decides whether a protected screen may render.
type Guard interface {
	Allow(ctx context.Context) bool
}

// TokenReader gives read access to the stored credential for whoami.
type TokenReader interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	SavedAt(ctx context.Context) (at time.Time, ok bool, err error)
}

// Deps are the collaborators of an App. All are required.
type Deps struct {
	Auth     services.AuthService
	Boards   services.BoardService
	Posts    services.PostService
	Sessions Sessions
	Guard    Guard
	Tokens   TokenReader
	Location *Location
	Log      logging.Logger
	In       io.Reader
	Out      io.Writer
}

type App struct {
	auth     services.AuthService
	boards   services.BoardService
	posts    services.PostService
	sessions Sessions
	guard    Guard
	tokens   TokenReader
	loc      *Location
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(d Deps) *App {
	return &App{
		auth:     d.Auth,
		boards:   d.Boards,
		posts:    d.Posts,
		sessions: d.Sessions,
		guard:    d.Guard,
		tokens:   d.Tokens,
		loc:      d.Location,
		log:      d.Log,
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
	}
}

// Run restores the previous session, shows the home screen and serves
// commands until the input ends or the user exits.
func (a *App) Run(ctx context.Context) {
	updates, unsubscribe := a.sessions.Subscribe()
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		watchSession(ctx, updates, a.announce)
	}()
	defer func() {
		unsubscribe()
		<-watcherDone
	}()

	if err := a.sessions.Initialize(ctx); err != nil {
		a.log.Error(ctx, "restore session", "error", err)
		a.printf("Could not restore the previous session: %v\n", err)
	}

	a.printf("Welcome to the board client (type 'help' for commands)\n")
	if err := a.Boards(ctx); err != nil {
		a.printf("%v\n", err)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Snapshot().Authenticated
}

// status is the prompt decoration: location, then the username when signed in.
func (a *App) status() string {
	loc := a.loc.Current()
	s := a.sessions.Snapshot()
	switch s.State() {
	case session.Authenticated:
		return loc + " " + s.User.Username
	case session.PendingIdentity:
		return loc + " …"
	}
	return loc
}

// mount moves to path if the guard lets the screen render. A refused screen
// leaves the location where the guard put it.
func (a *App) mount(ctx context.Context, path string) bool {
	if !routes.Public(path) && !a.guard.Allow(ctx) {
		a.printf("Please log in first (type 'login').\n")
		return false
	}
	a.loc.Navigate(path)
	return true
}

func (a *App) announce(msg string) {
	a.printf("\n* %s\n", msg)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
