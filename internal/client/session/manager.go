// Package session owns the client's authentication state.
//
// A Manager is the single writer of both the in-memory session and the
// credential store. Everything else (route guards, screens, watchers) reads
// it through Snapshot or Subscribe.
//
// Authentication is optimistic: as soon as a credential is known (read at
// Initialize or handed to Login) the session reports Authenticated=true and
// the identity is fetched in the background. A 401 or 404 from that lookup
// resets the session and clears the credential; a transport failure leaves
// the session pending until EnsureIdentity retries.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Donghyun-K/board-client/internal/client/credentials"
	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/client/routes"
	"github.com/Donghyun-K/board-client/internal/client/tokeninfo"
	"github.com/Donghyun-K/board-client/internal/common"
	"github.com/Donghyun-K/board-client/internal/logging"
)

const DefaultResolveTimeout = 10 * time.Second

var errEmptyIdentity = errors.New("empty identity")

// Manager tracks the session and owns the credential store.

type Manager struct {
	store    credentials.Store
	resolver IdentityResolver
	nav      Navigator
	log      logging.Logger
	timeout  time.Duration
	now      func() time.Time

	// opMu serialises the operations that touch both the store and the
	// state (Initialize, Login, Logout, reset). mu guards the fields below.
	opMu sync.Mutex
	mu   sync.Mutex

	authenticated bool
	user          *models.Identity
	generation    uint64
	resolving     bool

	subs    map[uint64]chan Snapshot
	nextSub uint64

	wg sync.WaitGroup
}

// Option configures a Manager.
type Option func(*Manager)

// WithResolveTimeout bounds each /auth/me lookup; zero disables the bound.
func WithResolveTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// NewManager returns a logged-out Manager; call Initialize to load a stored credential.
func NewManager(store credentials.Store, resolver IdentityResolver, nav Navigator, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		resolver: resolver,
		nav:      nav,
		log:      log.With("component", "session"),
		timeout:  DefaultResolveTimeout,
		now:      time.Now,
		subs:     make(map[uint64]chan Snapshot),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Initialize derives the starting state from the credential store. With a
// stored credential the session is Authenticated (pending identity) when
// Initialize returns. A missing credential is not an error.
func (m *Manager) Initialize(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	token, ok, err := m.store.Get(ctx)
	if err != nil {
		m.log.Error(ctx, "read stored credential", "error", err)
		return fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		m.log.Info(ctx, "no stored credential")
		return nil
	}

	m.inspect(ctx, token)
	m.authenticate(ctx)
	return nil
}

// Login stores token and marks the session authenticated before the identity
// lookup it starts has finished. It does not navigate.
func (m *Manager) Login(ctx context.Context, token string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.store.Set(ctx, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	m.inspect(ctx, token)
	m.authenticate(ctx)
	return nil
}

// Logout clears the credential, resets the session and navigates to the login
// screen. The state is reset even when the store fails to clear; that error is
// returned after navigation.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	err := m.store.Clear(ctx)
	m.mu.Lock()
	m.resetLocked()
	m.mu.Unlock()
	m.opMu.Unlock()

	if err != nil {
		m.log.Error(ctx, "clear credential on logout", "error", err)
	} else {
		m.log.Info(ctx, "logged out")
	}
	m.nav.Navigate(routes.Login)

	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// EnsureIdentity restarts the identity lookup when the session is pending
// and no lookup is running, which is the case after a transport failure.
// It reports whether a lookup was started.
func (m *Manager) EnsureIdentity(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.authenticated || m.user != nil || m.resolving {
		return false
	}
	m.log.Debug(ctx, "retrying identity resolution")
	m.resolveLocked(ctx, m.generation)
	return true
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe returns a channel that immediately holds the current snapshot and
// then receives every later change. A slow reader only misses intermediate
// states: the channel keeps the latest one. cancel closes the channel.
func (m *Manager) Subscribe() (<-chan Snapshot, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan Snapshot, 1)
	ch <- m.snapshotLocked()
	m.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if c, ok := m.subs[id]; ok {
				delete(m.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Wait blocks until every identity lookup started so far has completed.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// Close waits for in-flight lookups and closes all subscriptions.
func (m *Manager) Close() {
	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.subs {
		delete(m.subs, id)
		close(c)
	}
}

// authenticate enters PendingIdentity and starts the lookup. Caller holds opMu.
func (m *Manager) authenticate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.authenticated = true
	m.user = nil
	m.generation++
	m.publishLocked()
	m.resolveLocked(ctx, m.generation)
}

// resolveLocked starts an identity lookup bound to generation gen. The lookup
// outlives ctx's cancellation: callers return long before it finishes.
func (m *Manager) resolveLocked(ctx context.Context, gen uint64) {
	m.resolving = true
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		rctx := context.WithoutCancel(ctx)
		if m.timeout > 0 {
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(rctx, m.timeout)
			defer cancel()
		}

		id, err := m.resolver.Me(rctx)
		if err == nil && (id == nil || id.ID == 0) {
			err = errEmptyIdentity
		}
		m.finishResolve(rctx, gen, id, err)
	}()
}

func (m *Manager) finishResolve(ctx context.Context, gen uint64, id *models.Identity, err error) {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		m.log.Debug(ctx, "ignoring stale identity resolution", "generation", gen)
		return
	}
	m.resolving = false

	if err == nil {
		u := *id
		m.user = &u
		m.publishLocked()
		m.mu.Unlock()
		m.log.Info(ctx, "identity resolved", "user", u.Username, "id", u.ID)
		return
	}
	m.mu.Unlock()

	if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrNotFound) {
		m.log.Warn(ctx, "credential rejected, resetting session", "error", err)
		m.reset(ctx, gen)
		return
	}
	m.log.Warn(ctx, "identity resolution failed, will retry on next navigation", "error", err)
}

// reset is the self-healing logout: it only acts if no login or logout has
// happened since generation gen was entered.
func (m *Manager) reset(ctx context.Context, gen uint64) {
	m.opMu.Lock()

	m.mu.Lock()
	current := gen == m.generation
	m.mu.Unlock()
	if !current {
		m.opMu.Unlock()
		return
	}

	err := m.store.Clear(ctx)
	m.mu.Lock()
	m.resetLocked()
	m.mu.Unlock()
	m.opMu.Unlock()

	if err != nil {
		m.log.Error(ctx, "clear rejected credential", "error", err)
	}
	m.nav.Navigate(routes.Login)
}

func (m *Manager) resetLocked() {
	m.authenticated = false
	m.user = nil
	m.resolving = false
	m.generation++
	m.publishLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	s := Snapshot{Authenticated: m.authenticated, Generation: m.generation}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

func (m *Manager) publishLocked() {
	s := m.snapshotLocked()
	for _, c := range m.subs {
		select {
		case <-c:
		default:
		}
		select {
		case c <- s:
		default:
		}
	}
}

// inspect logs what the token says about itself. Decisions never depend on it.
func (m *Manager) inspect(ctx context.Context, token string) {
	info, err := tokeninfo.Inspect(token)
	if err != nil {
		m.log.Debug(ctx, "credential is opaque")
		return
	}
	if info.Expired(m.now()) {
		m.log.Warn(ctx, "credential has expired, expecting the server to reject it", "expired_at", info.ExpiresAt)
		return
	}
	m.log.Debug(ctx, "credential", "username", info.Username, "expires_at", info.ExpiresAt)
}
