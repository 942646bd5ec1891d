package meallog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/fdg312/thali/internal/cuisine"
	"github.com/fdg312/thali/internal/storage"
)

const DateLayout = "2006-01-02"

// ErrClosed is returned by mutations on a log whose session has ended.
// A fresh session owns the stored sequence from then on.
var ErrClosed = errors.New("meal log closed")

type Logger interface {
	Printf(format string, v ...any)
}

// Log is the in-memory meal log of one user, mirrored to the store after
// every mutation. It does not enforce the per-day cap or derive calories;
// callers do both before Add.
type Log struct {
	mu     sync.RWMutex
	store  storage.Store
	meals  []LoggedMeal
	now    func() time.Time
	loc    *time.Location
	logger Logger
	closed bool
}

type Option func(*Log)

func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(l *Log) {
		if loc != nil {
			l.loc = loc
		}
	}
}

func WithLogger(logger Logger) Option {
	return func(l *Log) { l.logger = logger }
}

func New(store storage.Store, opts ...Option) *Log {
	l := &Log{
		store:  store,
		meals:  []LoggedMeal{},
		now:    time.Now,
		loc:    time.Local,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load replaces the in-memory sequence with the stored one.
// A corrupt stored value is logged and treated as an empty log.
func (l *Log) Load(ctx context.Context) error {
	raw, found, err := l.store.Get(ctx, storage.KeyLoggedMeals)
	if err != nil {
		return fmt.Errorf("failed to load meal log: %w", err)
	}

	meals := []LoggedMeal{}
	if found && len(raw) > 0 {
		if err := json.Unmarshal(raw, &meals); err != nil {
			l.logger.Printf("WARN meallog: corrupt %s value, starting empty: %v", storage.KeyLoggedMeals, err)
			meals = []LoggedMeal{}
		}
	}

	l.mu.Lock()
	l.meals = meals
	l.mu.Unlock()
	return nil
}

// Close stops the log from writing. It waits for an in-flight mutation.
func (l *Log) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// persist writes next and makes it current. On a failed write the previous
// sequence stays in place. Caller holds l.mu.
func (l *Log) persist(ctx context.Context, next []LoggedMeal) error {
	if l.closed {
		return ErrClosed
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode meal log: %w", err)
	}
	if err := l.store.Set(ctx, storage.KeyLoggedMeals, raw); err != nil {
		return fmt.Errorf("failed to save meal log: %w", err)
	}
	l.meals = next
	return nil
}

func (l *Log) copyMeals() []LoggedMeal {
	out := make([]LoggedMeal, len(l.meals))
	for i, m := range l.meals {
		out[i] = m.clone()
	}
	return out
}

func (l *Log) Add(ctx context.Context, meal LoggedMeal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := append(l.copyMeals(), meal.clone())
	return l.persist(ctx, next)
}

// Remove deletes the first entry with id. Removing an unknown id is a no-op.
func (l *Log) Remove(ctx context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	next := make([]LoggedMeal, 0, len(l.meals)-1)
	next = append(next, l.meals[:idx]...)
	next = append(next, l.meals[idx+1:]...)
	if err := l.persist(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Update merges patch into the entry with id and returns the result.
// Updating an unknown id is a no-op.
func (l *Log) Update(ctx context.Context, id string, patch Patch) (LoggedMeal, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return LoggedMeal{}, false, nil
	}

	next := l.copyMeals()
	patch.apply(&next[idx])
	if err := l.persist(ctx, next); err != nil {
		return LoggedMeal{}, false, err
	}
	return next[idx].clone(), true, nil
}

// ClearToday removes every entry dated today and returns how many were removed.
func (l *Log) ClearToday(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.today()
	next := make([]LoggedMeal, 0, len(l.meals))
	for _, m := range l.meals {
		if m.Date != today {
			next = append(next, m)
		}
	}
	removed := len(l.meals) - len(next)
	if err := l.persist(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

func (l *Log) ClearAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.persist(ctx, []LoggedMeal{})
}

func (l *Log) indexOf(id string) int {
	for i, m := range l.meals {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (l *Log) today() string {
	return l.now().In(l.loc).Format(DateLayout)
}

// Today is the current calendar date in the log's location.
func (l *Log) Today() string {
	return l.today()
}

// Now is the log's clock in its location.
func (l *Log) Now() time.Time {
	return l.now().In(l.loc)
}

func (l *Log) Get(id string) (LoggedMeal, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return LoggedMeal{}, false
	}
	return l.meals[idx].clone(), true
}

// All returns the whole log in insertion order.
func (l *Log) All() []LoggedMeal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.copyMeals()
}

func (l *Log) On(date string) []LoggedMeal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []LoggedMeal{}
	for _, m := range l.meals {
		if m.Date == date {
			out = append(out, m.clone())
		}
	}
	return out
}

// Between returns entries dated within [from, to], inclusive, in insertion order.
func (l *Log) Between(from, to string) []LoggedMeal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []LoggedMeal{}
	for _, m := range l.meals {
		if m.Date >= from && m.Date <= to {
			out = append(out, m.clone())
		}
	}
	return out
}

func (l *Log) TodaysMeals() []LoggedMeal {
	return l.On(l.today())
}

func (l *Log) TodaysCalories() int {
	return SumCalories(l.TodaysMeals())
}

func (l *Log) MealsByType(mealType string) []LoggedMeal {
	out := []LoggedMeal{}
	for _, m := range l.TodaysMeals() {
		if m.Type == mealType {
			out = append(out, m)
		}
	}
	return out
}

// TodaysMacros estimates grams from today's calories with a fixed
// 15/60/25 protein/carbs/fat split at 4/4/9 kcal per gram.
func (l *Log) TodaysMacros() Macros {
	return EstimateMacros(l.TodaysCalories())
}

func (l *Log) MealCount() MealCount {
	return CountMeals(l.TodaysMeals())
}

func EstimateMacros(calories int) Macros {
	total := float64(calories)
	return Macros{
		Protein:  int(math.Round(total * 0.15 / 4)),
		Carbs:    int(math.Round(total * 0.60 / 4)),
		Fat:      int(math.Round(total * 0.25 / 9)),
		Calories: calories,
	}
}

// CountMeals reports how many distinct meal types appear in meals and which
// canonical slots are still open, in canonical order.
func CountMeals(meals []LoggedMeal) MealCount {
	present := make(map[string]bool, len(meals))
	for _, m := range meals {
		present[m.Type] = true
	}

	remaining := []string{}
	for _, t := range cuisine.MealTypes {
		if !present[t] {
			remaining = append(remaining, t)
		}
	}

	return MealCount{
		Logged:    len(present),
		Total:     len(cuisine.MealTypes),
		Remaining: remaining,
	}
}

func SumCalories(meals []LoggedMeal) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}
