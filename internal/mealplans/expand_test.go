package mealplans

import (
	"reflect"
	"testing"
)

func TestExpand_FourteenDays(t *testing.T) {
	base := BaseTemplate()
	plan := Expand(base, 14)

	if len(plan.Days) != 14 {
		t.Fatalf("expected 14 days, got %d", len(plan.Days))
	}
	if plan.Days[7].Day != plan.Days[0].Day {
		t.Errorf("expected day 7 to repeat %q, got %q", plan.Days[0].Day, plan.Days[7].Day)
	}
	if !reflect.DeepEqual(plan.Days[7].Meals, base.Days[0].Meals) {
		t.Errorf("expected day 7 meals to match template day 0")
	}
	if plan.TotalCalories != base.TotalCalories || plan.Macros != base.Macros || plan.AyurvedicBalance != base.AyurvedicBalance {
		t.Errorf("expected aggregates carried over, got %+v / %+v", plan.TotalCalories, plan.Macros)
	}
}

func TestExpand_WeekdaysAndThemesCycleIndependently(t *testing.T) {
	plan := Expand(BaseTemplate(), 30)

	for i, d := range plan.Days {
		if d.Day != weekdays[i%7] {
			t.Errorf("day %d: expected %s, got %s", i, weekdays[i%7], d.Day)
		}
		if d.RegionalTheme != regionalThemes[i%8] {
			t.Errorf("day %d: expected theme %s, got %s", i, regionalThemes[i%8], d.RegionalTheme)
		}
	}

	// day 7 is Monday again but the theme has moved on to the eighth entry
	if plan.Days[7].RegionalTheme != "Maharashtrian" {
		t.Errorf("expected Maharashtrian on day 7, got %s", plan.Days[7].RegionalTheme)
	}
}

func TestExpand_ShortDuration(t *testing.T) {
	plan := Expand(BaseTemplate(), 3)
	if len(plan.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(plan.Days))
	}
	if plan.Days[2].Day != "Wednesday" {
		t.Errorf("expected Wednesday, got %s", plan.Days[2].Day)
	}
}

func TestExpand_EmptyBase(t *testing.T) {
	plan := Expand(MealPlan{TotalCalories: 1000}, 7)
	if len(plan.Days) != 0 {
		t.Errorf("expected no days, got %d", len(plan.Days))
	}
	if plan.TotalCalories != 1000 {
		t.Errorf("expected totals kept, got %d", plan.TotalCalories)
	}
}

func TestExpand_DaysAreIndependentCopies(t *testing.T) {
	base := BaseTemplate()
	plan := Expand(base, 14)

	plan.Days[7].Meals[0].Name = "changed"
	plan.Days[7].Meals[0].Ingredients[0] = "changed"

	if plan.Days[0].Meals[0].Name == "changed" {
		t.Error("days 0 and 7 share meal storage")
	}
	if base.Days[0].Meals[0].Ingredients[0] == "changed" {
		t.Error("expanded plan shares ingredients with the template")
	}
}

func TestBaseTemplate_Shape(t *testing.T) {
	base := BaseTemplate()
	if len(base.Days) != 7 {
		t.Fatalf("expected 7 template days, got %d", len(base.Days))
	}
	for _, d := range base.Days {
		if len(d.Meals) != 4 {
			t.Errorf("%s: expected 4 meals, got %d", d.Day, len(d.Meals))
		}
	}
	if base.TotalCalories != 2100 {
		t.Errorf("expected 2100 kcal, got %d", base.TotalCalories)
	}
}

func TestPaginate(t *testing.T) {
	days := Expand(BaseTemplate(), 14).Days

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantCount int
		wantFirst string
	}{
		{"first", 1, 1, 4, "Monday"},
		{"second", 2, 2, 4, "Friday"},
		{"last partial", 4, 4, 2, "Saturday"},
		{"below range", 0, 1, 4, "Monday"},
		{"above range", 9, 4, 2, "Saturday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(days, tt.page)
			if got.TotalPages != 4 {
				t.Errorf("expected 4 pages, got %d", got.TotalPages)
			}
			if got.Page != tt.wantPage {
				t.Errorf("expected page %d, got %d", tt.wantPage, got.Page)
			}
			if len(got.Days) != tt.wantCount {
				t.Fatalf("expected %d days, got %d", tt.wantCount, len(got.Days))
			}
			if got.Days[0].Day != tt.wantFirst {
				t.Errorf("expected first day %s, got %s", tt.wantFirst, got.Days[0].Day)
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	got := Paginate(nil, 3)
	if got.Page != 1 || got.TotalPages != 1 || len(got.Days) != 0 {
		t.Errorf("unexpected empty page: %+v", got)
	}
}
