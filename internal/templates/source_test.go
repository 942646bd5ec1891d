package templates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fdg312/thali/internal/mealplans"
)

func writeTemplate(t *testing.T, path string, plan mealplans.MealPlan) {
	t.Helper()
	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func twoDayPlan(total int) mealplans.MealPlan {
	return mealplans.MealPlan{
		Days: []mealplans.DayPlan{
			{Day: "Monday", Meals: []mealplans.Meal{{Type: "Breakfast", Name: "Upma", Calories: 300}}},
			{Day: "Tuesday", Meals: []mealplans.Meal{{Type: "Lunch", Name: "Thali", Calories: 600}}},
		},
		TotalCalories: total,
	}
}

func TestNew_BuiltinWhenNoPath(t *testing.T) {
	s, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(s.Template().Days); got != 7 {
		t.Errorf("expected built-in 7 day template, got %d days", got)
	}
	if err := s.Watch(); err != nil {
		t.Errorf("watch without path should be a no-op: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}

func TestNew_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	writeTemplate(t, path, twoDayPlan(900))

	s, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plan := s.Template()
	if len(plan.Days) != 2 || plan.TotalCalories != 900 {
		t.Errorf("unexpected template: %+v", plan)
	}
}

func TestNew_InvalidFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0o644)
	if _, err := New(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}

	empty := filepath.Join(dir, "empty.json")
	writeTemplate(t, empty, mealplans.MealPlan{})
	if _, err := New(empty); err == nil {
		t.Error("expected error for template without days")
	}

	if _, err := New(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate_UnknownMealType(t *testing.T) {
	plan := twoDayPlan(900)
	plan.Days[0].Meals[0].Type = "Brunch"
	if err := Validate(plan); err == nil {
		t.Error("expected unknown meal type to be rejected")
	}
}

func TestTemplate_ReturnsCopy(t *testing.T) {
	s, _ := New("")
	plan := s.Template()
	plan.Days[0].Meals[0].Name = "changed"

	if s.Template().Days[0].Meals[0].Name == "changed" {
		t.Error("template state changed through returned copy")
	}
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	writeTemplate(t, path, twoDayPlan(900))

	s, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	os.WriteFile(path, []byte("not json"), 0o644)
	if err := s.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if s.Template().TotalCalories != 900 {
		t.Error("expected previous template kept after failed reload")
	}
}

func TestWatch_PicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	writeTemplate(t, path, twoDayPlan(900))

	s, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Watch(); err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer s.Close()

	writeTemplate(t, path, twoDayPlan(1500))

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s.Template().TotalCalories == 1500 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Errorf("expected reloaded template, still have %d kcal", s.Template().TotalCalories)
}
