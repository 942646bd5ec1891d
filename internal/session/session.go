package session

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/fdg312/thali/internal/meallog"
	"github.com/fdg312/thali/internal/storage"
)

// loginAtLayout matches the ISO form browsers write, e.g. 2026-03-14T09:30:00.000Z.
const loginAtLayout = "2006-01-02T15:04:05.000Z07:00"

type Logger interface {
	Printf(format string, v ...any)
}

// Session is the per-user state the API works against: the owner scoped
// store, the loaded meal log and the sign-in time.
type Session struct {
	mu sync.Mutex

	UserID string
	Store  storage.Store
	Meals  *meallog.Log

	// loginAt has its own lock: readers run while s.mu is held by a writer.
	loginMu sync.RWMutex
	loginAt time.Time
	now     func() time.Time
}

// Lock serializes compound read-check-write operations for this user,
// such as enforcing the daily meal cap before an add.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) LoginAt() time.Time {
	s.loginMu.RLock()
	defer s.loginMu.RUnlock()
	return s.loginAt
}

func (s *Session) setLoginAt(ts time.Time) {
	s.loginMu.Lock()
	s.loginAt = ts
	s.loginMu.Unlock()
}

// Streak is the number of started 24h periods since sign-in, at least 1.
func (s *Session) Streak() int {
	elapsed := s.now().Sub(s.LoginAt())
	if elapsed <= 0 {
		return 1
	}
	days := int(math.Ceil(elapsed.Hours() / 24))
	return max(days, 1)
}

// Manager hands out one Session per user id and owns their lifecycle.
type Manager struct {
	mu       sync.Mutex
	backend  storage.Backend
	sessions map[string]*Session
	onClose  []func(userID string)

	now    func() time.Time
	loc    *time.Location
	logger Logger
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

func WithLogger(logger Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

func NewManager(backend storage.Backend, opts ...Option) *Manager {
	m := &Manager{
		backend:  backend,
		sessions: make(map[string]*Session),
		now:      time.Now,
		loc:      time.Local,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnClose registers fn to run whenever a user's session is torn down.
func (m *Manager) OnClose(fn func(userID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onClose = append(m.onClose, fn)
}

// Open returns the live session for userID, loading it from storage on first use.
// A user without a stored sign-in time is treated as signing in now.
func (m *Manager) Open(ctx context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}

	store := storage.ForOwner(m.backend, userID)
	loginAt, err := m.readLoginAt(ctx, store)
	if err != nil {
		return nil, err
	}

	meals := meallog.New(store,
		meallog.WithClock(m.now),
		meallog.WithLocation(m.loc),
		meallog.WithLogger(m.logger),
	)
	if err := meals.Load(ctx); err != nil {
		return nil, err
	}

	s := &Session{
		UserID:  userID,
		Store:   store,
		Meals:   meals,
		loginAt: loginAt,
		now:     m.now,
	}
	m.sessions[userID] = s
	return s, nil
}

// SignIn records a fresh sign-in time and returns the user's session.
func (m *Manager) SignIn(ctx context.Context, userID string) (*Session, error) {
	store := storage.ForOwner(m.backend, userID)
	now := m.now()
	if err := writeLoginAt(ctx, store, now); err != nil {
		return nil, err
	}

	s, err := m.Open(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.setLoginAt(now)
	return s, nil
}

// SignOut forgets the stored sign-in time and tears the session down.
// Meal log and saved plan stay in storage.
func (m *Manager) SignOut(ctx context.Context, userID string) error {
	if err := m.backend.Delete(ctx, userID, storage.KeyLoginAt); err != nil {
		return fmt.Errorf("failed to clear sign-in time: %w", err)
	}
	m.Close(userID)
	return nil
}

// Close drops the in-memory session and runs the close hooks. Requests still
// holding the old session get meallog.ErrClosed on their next write, so they
// cannot overwrite what a re-opened session stores.
func (m *Manager) Close(userID string) {
	m.mu.Lock()
	s, existed := m.sessions[userID]
	delete(m.sessions, userID)
	if existed {
		s.Meals.Close()
	}
	hooks := append([]func(string){}, m.onClose...)
	m.mu.Unlock()

	if !existed {
		return
	}
	for _, fn := range hooks {
		fn(userID)
	}
}

// Active reports how many sessions are loaded.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) readLoginAt(ctx context.Context, store storage.Store) (time.Time, error) {
	raw, found, err := store.Get(ctx, storage.KeyLoginAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load sign-in time: %w", err)
	}
	if found {
		ts, perr := time.Parse(time.RFC3339Nano, string(raw))
		if perr == nil {
			return ts, nil
		}
		m.logger.Printf("WARN session: invalid %s value %q, resetting", storage.KeyLoginAt, string(raw))
	}

	now := m.now()
	if err := writeLoginAt(ctx, store, now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

func writeLoginAt(ctx context.Context, store storage.Store, ts time.Time) error {
	value := ts.UTC().Format(loginAtLayout)
	if err := store.Set(ctx, storage.KeyLoginAt, []byte(value)); err != nil {
		return fmt.Errorf("failed to save sign-in time: %w", err)
	}
	return nil
}
