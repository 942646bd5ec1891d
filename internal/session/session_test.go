package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fdg312/thali/internal/meallog"
	"github.com/fdg312/thali/internal/storage"
	"github.com/fdg312/thali/internal/storage/memory"
)

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

func newTestManager(backend storage.Backend, now *time.Time) *Manager {
	return NewManager(backend,
		WithClock(func() time.Time { return *now }),
		WithLocation(time.UTC),
		WithLogger(nopLogger{}),
	)
}

func TestOpen_WritesLoginAtWhenMissing(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	m := newTestManager(backend, &now)

	s, err := m.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if !s.LoginAt().Equal(now) {
		t.Errorf("expected loginAt %v, got %v", now, s.LoginAt())
	}

	raw, found, _ := backend.Get(ctx, "user1", storage.KeyLoginAt)
	if !found {
		t.Fatal("expected loginAt to be stored")
	}
	if string(raw) != "2026-03-14T09:30:00.000Z" {
		t.Errorf("unexpected stored loginAt: %s", raw)
	}
}

func TestOpen_ReusesSession(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := newTestManager(memory.New(), &now)

	a, _ := m.Open(ctx, "user1")
	b, _ := m.Open(ctx, "user1")
	if a != b {
		t.Error("expected the same session for the same user")
	}
	c, _ := m.Open(ctx, "user2")
	if a == c {
		t.Error("expected different sessions for different users")
	}
	if m.Active() != 2 {
		t.Errorf("expected 2 active sessions, got %d", m.Active())
	}
}

func TestOpen_LoadsStoredMealLog(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	backend.Set(ctx, "user1", storage.KeyLoggedMeals,
		[]byte(`[{"id":"1","name":"Poha","type":"Breakfast","calories":300,"time":"08:00 AM","portion":1,"date":"2026-03-14"}]`))

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	m := newTestManager(backend, &now)

	s, err := m.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if got := s.Meals.TodaysCalories(); got != 300 {
		t.Errorf("expected 300 kcal from stored log, got %d", got)
	}
}

func TestStreak(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	loginAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	backend.Set(ctx, "user1", storage.KeyLoginAt, []byte(loginAt.Format(time.RFC3339)))

	now := loginAt
	m := newTestManager(backend, &now)
	s, err := m.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	tests := []struct {
		after time.Duration
		want  int
	}{
		{0, 1},
		{time.Hour, 1},
		{24 * time.Hour, 1},
		{25 * time.Hour, 2},
		{72*time.Hour + time.Minute, 4},
	}
	for _, tt := range tests {
		now = loginAt.Add(tt.after)
		if got := s.Streak(); got != tt.want {
			t.Errorf("after %v: expected streak %d, got %d", tt.after, tt.want, got)
		}
	}
}

func TestSignInResetsLoginAt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	m := newTestManager(memory.New(), &now)

	s, _ := m.Open(ctx, "user1")
	now = now.Add(5 * 24 * time.Hour)
	if s.Streak() != 5 {
		t.Fatalf("expected streak 5, got %d", s.Streak())
	}

	s, err := m.SignIn(ctx, "user1")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if s.Streak() != 1 {
		t.Errorf("expected streak reset to 1, got %d", s.Streak())
	}
}

func TestSignOut_ClearsLoginAtAndRunsHooks(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m := newTestManager(backend, &now)

	var closed []string
	m.OnClose(func(userID string) { closed = append(closed, userID) })

	s, _ := m.SignIn(ctx, "user1")
	s.Meals.Add(ctx, meallog.LoggedMeal{ID: "1", Name: "Dosa", Type: "Breakfast", Calories: 350, Portion: 1, Date: "2026-03-14"})

	if err := m.SignOut(ctx, "user1"); err != nil {
		t.Fatalf("sign out failed: %v", err)
	}

	if _, found, _ := backend.Get(ctx, "user1", storage.KeyLoginAt); found {
		t.Error("expected loginAt removed on sign out")
	}
	if _, found, _ := backend.Get(ctx, "user1", storage.KeyLoggedMeals); !found {
		t.Error("meal log must survive sign out")
	}
	if len(closed) != 1 || closed[0] != "user1" {
		t.Errorf("expected close hook for user1, got %v", closed)
	}
	if m.Active() != 0 {
		t.Errorf("expected no active sessions, got %d", m.Active())
	}

	// closing an unknown session does not fire hooks
	m.Close("nobody")
	if len(closed) != 1 {
		t.Errorf("unexpected hook call: %v", closed)
	}
}

func TestOpen_InvalidLoginAtIsReset(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	backend.Set(ctx, "user1", storage.KeyLoginAt, []byte("yesterday"))

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m := newTestManager(backend, &now)

	s, err := m.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if !s.LoginAt().Equal(now) {
		t.Errorf("expected reset to %v, got %v", now, s.LoginAt())
	}
}

func TestSignIn_ConcurrentStreakReads(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m := newTestManager(memory.New(), &now)

	s, err := m.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := m.SignIn(ctx, "user1"); err != nil {
					t.Errorf("sign in failed: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := s.Streak(); got != 1 {
					t.Errorf("expected streak 1, got %d", got)
					return
				}
				_ = s.LoginAt()
			}
		}()
	}
	wg.Wait()
}

func TestClose_StaleSessionCannotOverwriteLog(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m := newTestManager(backend, &now)

	stale, _ := m.Open(ctx, "user1")
	m.Close("user1")

	fresh, err := m.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if fresh == stale {
		t.Fatal("expected a new session after close")
	}
	x := meallog.LoggedMeal{ID: "x", Name: "Idli", Type: "Breakfast", Calories: 200, Portion: 1, Date: "2026-03-14"}
	if err := fresh.Meals.Add(ctx, x); err != nil {
		t.Fatalf("add on fresh session failed: %v", err)
	}

	y := meallog.LoggedMeal{ID: "y", Name: "Vada", Type: "Snack", Calories: 250, Portion: 1, Date: "2026-03-14"}
	if err := stale.Meals.Add(ctx, y); !errors.Is(err, meallog.ErrClosed) {
		t.Fatalf("expected ErrClosed from stale session, got %v", err)
	}

	m.Close("user1")
	reloaded, _ := m.Open(ctx, "user1")
	all := reloaded.Meals.All()
	if len(all) != 1 || all[0].ID != "x" {
		t.Errorf("expected only meal x persisted, got %+v", all)
	}
}

func TestSignOut_DuringMealWrites(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m := newTestManager(backend, &now)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s, err := m.Open(ctx, "user1")
				if err != nil {
					t.Errorf("open failed: %v", err)
					return
				}
				meal := meallog.LoggedMeal{
					ID:       fmt.Sprintf("%d-%d", i, j),
					Name:     "Upma",
					Type:     "Breakfast",
					Calories: 250,
					Portion:  1,
					Date:     "2026-03-14",
				}
				if err := s.Meals.Add(ctx, meal); err != nil && !errors.Is(err, meallog.ErrClosed) {
					t.Errorf("add failed: %v", err)
				}
			}
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 10; j++ {
			if err := m.SignOut(ctx, "user1"); err != nil {
				t.Errorf("sign out failed: %v", err)
			}
		}
	}()
	wg.Wait()

	s, err := m.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	raw, found, _ := backend.Get(ctx, "user1", storage.KeyLoggedMeals)
	if !found {
		t.Fatal("expected stored meal log")
	}
	var stored []meallog.LoggedMeal
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("decode stored log: %v", err)
	}
	if got := len(s.Meals.All()); got != len(stored) {
		t.Errorf("in-memory log has %d meals, storage has %d", got, len(stored))
	}
}
