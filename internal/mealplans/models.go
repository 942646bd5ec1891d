package mealplans

import (
	"strconv"
	"strings"

	"github.com/fdg312/thali/internal/cuisine"
)

const (
	DefaultServings = "2"
	DefaultDuration = "7"
	MinServings     = 1
	MaxServings     = 6
)

// Preferences is the planner form as submitted. Numeric fields stay strings
// so saved plans keep the shape clients already read back.
type Preferences struct {
	Goal          string   `json:"goal"`
	DietType      string   `json:"dietType"`
	Restrictions  []string `json:"restrictions"`
	Servings      string   `json:"servings"`
	Duration      string   `json:"duration"`
	CalorieTarget string   `json:"calorieTarget"`
}

func (p Preferences) withDefaults() Preferences {
	if strings.TrimSpace(p.Servings) == "" {
		p.Servings = DefaultServings
	}
	if strings.TrimSpace(p.Duration) == "" {
		p.Duration = DefaultDuration
	}
	if p.Restrictions == nil {
		p.Restrictions = []string{}
	}
	return p
}

// Validate applies the planner checks in the order the form reports them.
func (p Preferences) Validate() error {
	if p.Goal == "" || p.DietType == "" {
		return cuisine.NewValidationError("Please select your goal and diet type.")
	}
	if !cuisine.IsAyurvedicGoal(p.Goal) {
		return cuisine.NewValidationError("Unknown goal: " + p.Goal)
	}
	if !cuisine.IsDietType(p.DietType) {
		return cuisine.NewValidationError("Unknown diet type: " + p.DietType)
	}
	for _, r := range p.Restrictions {
		if !cuisine.IsRestriction(r) {
			return cuisine.NewValidationError("Unknown restriction: " + r)
		}
	}

	if err := cuisine.ValidateDietCombination(p.DietType, p.Restrictions).Err(); err != nil {
		return err
	}

	if p.CalorieTarget != "" {
		if err := cuisine.ValidateCalorieTarget(p.CalorieTarget).Err(); err != nil {
			return err
		}
	}

	if _, ok := p.DurationDays(); !ok {
		return cuisine.NewValidationError("Plan duration must be 3, 7, 14 or 30 days.")
	}
	if n, err := strconv.Atoi(strings.TrimSpace(p.Servings)); err != nil || n < MinServings || n > MaxServings {
		return cuisine.NewValidationError("Servings must be between 1 and 6.")
	}
	return nil
}

// DurationDays parses the requested plan length.
func (p Preferences) DurationDays() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(p.Duration))
	if err != nil || !ValidDuration(n) {
		return 0, false
	}
	return n, true
}

// CalorieTargetValue returns the parsed target when one was given and is valid.
func (p Preferences) CalorieTargetValue() (int, bool) {
	if p.CalorieTarget == "" || !cuisine.ValidateCalorieTarget(p.CalorieTarget).IsValid {
		return 0, false
	}
	return cuisine.ParseLeadingInt(p.CalorieTarget)
}

// SavedPlan is the value stored under the saved plan key: the plan fields
// flattened alongside the save time and the preferences it was built from.
type SavedPlan struct {
	MealPlan
	SavedAt     string      `json:"savedAt"`
	Preferences Preferences `json:"preferences"`
}

type GenerateResponse struct {
	Plan        MealPlan    `json:"plan"`
	Preferences Preferences `json:"preferences"`
	TotalPages  int         `json:"totalPages"`
}

type SavedPlanResponse struct {
	Plan SavedPlan `json:"plan"`
	Page *Page     `json:"page,omitempty"`
}

type OptionsResponse struct {
	Goals        []string `json:"goals"`
	DietTypes    []string `json:"dietTypes"`
	Restrictions []string `json:"restrictions"`
	Durations    []int    `json:"durations"`
	MinServings  int      `json:"minServings"`
	MaxServings  int      `json:"maxServings"`
	MealTypes    []string `json:"mealTypes"`
}
