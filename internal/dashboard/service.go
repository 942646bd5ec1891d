package dashboard

import (
	"context"

	"github.com/fdg312/thali/internal/mealplans"
	"github.com/fdg312/thali/internal/meallog"
	"github.com/fdg312/thali/internal/session"
)

const DefaultCalorieTarget = 2000

// SavedPlanReader is the part of the plan service the dashboard needs.
type SavedPlanReader interface {
	GetSaved(ctx context.Context, userID string) (mealplans.SavedPlan, bool, error)
}

type Service struct {
	sessions      *session.Manager
	plans         SavedPlanReader
	defaultTarget int
}

func NewService(sessions *session.Manager, plans SavedPlanReader, defaultTarget int) *Service {
	if defaultTarget <= 0 {
		defaultTarget = DefaultCalorieTarget
	}
	return &Service{sessions: sessions, plans: plans, defaultTarget: defaultTarget}
}

type PlanSummary struct {
	SavedAt       string `json:"savedAt"`
	Goal          string `json:"goal"`
	DietType      string `json:"dietType"`
	Days          int    `json:"days"`
	TotalCalories int    `json:"totalCalories"`
}

type Stats struct {
	Date              string               `json:"date"`
	Meals             []meallog.LoggedMeal `json:"meals"`
	CaloriesConsumed  int                  `json:"caloriesConsumed"`
	CalorieTarget     int                  `json:"calorieTarget"`
	CaloriesRemaining int                  `json:"caloriesRemaining"`
	Progress          int                  `json:"progress"` // percent of target, capped at 100
	Macros            meallog.Macros       `json:"macros"`
	MealCount         meallog.MealCount    `json:"mealCount"`
	StreakDays        int                  `json:"streakDays"`
	SavedPlan         *PlanSummary         `json:"savedPlan"`
}

// Stats builds the progress view for today. The calorie target comes from the
// saved plan's own target, then the plan total, then the configured default.
func (s *Service) Stats(ctx context.Context, userID string) (Stats, error) {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	saved, found, err := s.plans.GetSaved(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	target := s.defaultTarget
	var summary *PlanSummary
	if found {
		if v, ok := saved.Preferences.CalorieTargetValue(); ok {
			target = v
		} else if saved.TotalCalories > 0 {
			target = saved.TotalCalories
		}
		summary = &PlanSummary{
			SavedAt:       saved.SavedAt,
			Goal:          saved.Preferences.Goal,
			DietType:      saved.Preferences.DietType,
			Days:          len(saved.Days),
			TotalCalories: saved.TotalCalories,
		}
	}

	// derived fields all come from this one snapshot
	today := sess.Meals.Today()
	todays := sess.Meals.On(today)
	consumed := meallog.SumCalories(todays)
	progress := 0
	if target > 0 {
		progress = min(consumed*100/target, 100)
	}

	return Stats{
		Date:              today,
		Meals:             todays,
		CaloriesConsumed:  consumed,
		CalorieTarget:     target,
		CaloriesRemaining: max(target-consumed, 0),
		Progress:          progress,
		Macros:            meallog.EstimateMacros(consumed),
		MealCount:         meallog.CountMeals(todays),
		StreakDays:        sess.Streak(),
		SavedPlan:         summary,
	}, nil
}
