package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fdg312/thali/internal/mealplans"
	"github.com/fdg312/thali/internal/meallog"
	"github.com/fdg312/thali/internal/session"
	"github.com/fdg312/thali/internal/storage/memory"
	"github.com/fdg312/thali/internal/userctx"
)

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

type fixture struct {
	sessions *session.Manager
	plans    *mealplans.Service
	service  *Service
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{now: time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)}
	f.sessions = session.NewManager(memory.New(),
		session.WithClock(func() time.Time { return f.now }),
		session.WithLocation(time.UTC),
		session.WithLogger(nopLogger{}),
	)
	f.plans = mealplans.NewService(f.sessions, nil)
	f.service = NewService(f.sessions, f.plans, 0)
	return f
}

func (f *fixture) logMeals(t *testing.T, calories ...int) {
	t.Helper()
	ctx := context.Background()
	sess, err := f.sessions.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	types := []string{"Breakfast", "Lunch", "Dinner", "Snack"}
	for i, c := range calories {
		meal := meallog.LoggedMeal{
			ID: string(rune('a' + i)), Name: "Meal", Type: types[i%4],
			Calories: c, Portion: 1, Date: "2026-03-14",
		}
		if err := sess.Meals.Add(ctx, meal); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
}

func (f *fixture) savePlan(t *testing.T, prefs mealplans.Preferences) {
	t.Helper()
	ctx := context.Background()
	if _, _, err := f.plans.Generate(ctx, "user1", prefs); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := f.plans.Save(ctx, "user1"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
}

func TestStats_DefaultTarget(t *testing.T) {
	f := newFixture(t)
	f.logMeals(t, 380, 650, 600, 220)

	stats, err := f.service.Stats(context.Background(), "user1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.CaloriesConsumed != 1850 {
		t.Errorf("expected 1850 consumed, got %d", stats.CaloriesConsumed)
	}
	if stats.CalorieTarget != 2000 || stats.CaloriesRemaining != 150 {
		t.Errorf("expected target 2000 remaining 150, got %d/%d", stats.CalorieTarget, stats.CaloriesRemaining)
	}
	if stats.Progress != 92 {
		t.Errorf("expected progress 92, got %d", stats.Progress)
	}
	if stats.Macros.Protein != 69 {
		t.Errorf("expected protein 69, got %d", stats.Macros.Protein)
	}
	if stats.StreakDays != 1 {
		t.Errorf("expected streak 1, got %d", stats.StreakDays)
	}
	if stats.SavedPlan != nil {
		t.Error("expected no saved plan")
	}
	if len(stats.Meals) != 4 || stats.MealCount.Logged != 4 {
		t.Errorf("unexpected meals: %d / %+v", len(stats.Meals), stats.MealCount)
	}
}

func TestStats_TargetFromSavedPlan(t *testing.T) {
	f := newFixture(t)
	f.savePlan(t, mealplans.Preferences{Goal: "Detox", DietType: "Kerala", CalorieTarget: "1800 kcal"})
	f.logMeals(t, 1750)

	stats, _ := f.service.Stats(context.Background(), "user1")
	if stats.CalorieTarget != 1800 || stats.CaloriesRemaining != 50 {
		t.Errorf("expected target 1800 remaining 50, got %d/%d", stats.CalorieTarget, stats.CaloriesRemaining)
	}
	if stats.SavedPlan == nil || stats.SavedPlan.Days != 7 || stats.SavedPlan.DietType != "Kerala" {
		t.Errorf("unexpected plan summary: %+v", stats.SavedPlan)
	}
}

func TestStats_TargetFromPlanTotal(t *testing.T) {
	f := newFixture(t)
	f.savePlan(t, mealplans.Preferences{Goal: "Detox", DietType: "Kerala", Duration: "3"})
	f.logMeals(t, 2500)

	stats, _ := f.service.Stats(context.Background(), "user1")
	if stats.CalorieTarget != 2100 {
		t.Errorf("expected plan total 2100 as target, got %d", stats.CalorieTarget)
	}
	if stats.CaloriesRemaining != 0 || stats.Progress != 100 {
		t.Errorf("expected remaining clamped to 0 and progress 100, got %d/%d", stats.CaloriesRemaining, stats.Progress)
	}
}

func TestStats_Streak(t *testing.T) {
	f := newFixture(t)
	f.service.Stats(context.Background(), "user1")

	f.now = f.now.Add(50 * time.Hour)
	stats, _ := f.service.Stats(context.Background(), "user1")
	if stats.StreakDays != 3 {
		t.Errorf("expected streak 3, got %d", stats.StreakDays)
	}
}

func TestHandleGet(t *testing.T) {
	f := newFixture(t)
	h := NewHandler(f.service)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req = req.WithContext(userctx.WithUserID(req.Context(), "user1"))
	w := httptest.NewRecorder()
	h.HandleGet(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if v, ok := body["savedPlan"]; !ok || v != nil {
		t.Errorf("expected savedPlan: null, got %v", v)
	}
	if body["calorieTarget"] != float64(2000) {
		t.Errorf("expected calorieTarget 2000, got %v", body["calorieTarget"])
	}
}

func TestStats_ConsistentDuringSignInAndWrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess, err := f.sessions.Open(ctx, "user1")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			meal := meallog.LoggedMeal{
				ID: fmt.Sprintf("m%d", i), Name: "Meal", Type: "Snack",
				Calories: 100, Portion: 1, Date: "2026-03-14",
			}
			if err := sess.Meals.Add(ctx, meal); err != nil {
				t.Errorf("add failed: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			if _, err := f.sessions.SignIn(ctx, "user1"); err != nil {
				t.Errorf("sign in failed: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			stats, err := f.service.Stats(ctx, "user1")
			if err != nil {
				t.Errorf("stats failed: %v", err)
				return
			}
			if stats.CaloriesConsumed != 100*len(stats.Meals) {
				t.Errorf("consumed %d does not match %d meals", stats.CaloriesConsumed, len(stats.Meals))
			}
			if stats.Macros.Calories != stats.CaloriesConsumed {
				t.Errorf("macros built from %d kcal, consumed %d", stats.Macros.Calories, stats.CaloriesConsumed)
			}
			if len(stats.Meals) > 0 && stats.MealCount.Logged != 1 {
				t.Errorf("expected one meal type logged, got %+v", stats.MealCount)
			}
			if stats.StreakDays != 1 {
				t.Errorf("expected streak 1, got %d", stats.StreakDays)
			}
		}
	}()
	wg.Wait()
}
