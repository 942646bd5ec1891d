package meals

import (
	"fmt"

	"github.com/fdg312/thali/internal/meallog"
)

// DefaultMaxPerDay is how many entries a single date can hold.
const DefaultMaxPerDay = 4

// TimeLayout is the 12 hour clock format entries are stamped with, e.g. "08:05 PM".
const TimeLayout = "03:04 PM"

type RiceInput struct {
	Grams int `json:"grams"`
}

type RotiInput struct {
	Count int `json:"count"`
}

// AddMealRequest logs either a catalog recipe (RecipeID) or a custom dish
// (Name plus BaseCalories for one portion).
type AddMealRequest struct {
	RecipeID     *int       `json:"recipeId,omitempty"`
	Name         string     `json:"name,omitempty"`
	BaseCalories *int       `json:"baseCalories,omitempty"`
	Type         string     `json:"type"`
	Portion      *float64   `json:"portion,omitempty"`
	Rice         *RiceInput `json:"rice,omitempty"`
	Roti         *RotiInput `json:"roti,omitempty"`
	Date         string     `json:"date,omitempty"`
	Time         string     `json:"time,omitempty"`
}

// UpdateMealRequest changes an existing entry. Calories are recomputed
// whenever portion, rice or roti change.
type UpdateMealRequest struct {
	Name       *string    `json:"name,omitempty"`
	Type       *string    `json:"type,omitempty"`
	Portion    *float64   `json:"portion,omitempty"`
	Rice       *RiceInput `json:"rice,omitempty"`
	Roti       *RotiInput `json:"roti,omitempty"`
	RemoveRice bool       `json:"removeRice,omitempty"`
	RemoveRoti bool       `json:"removeRoti,omitempty"`
	Date       *string    `json:"date,omitempty"`
	Time       *string    `json:"time,omitempty"`
}

func (r UpdateMealRequest) changesCalories() bool {
	return r.Portion != nil || r.Rice != nil || r.Roti != nil || r.RemoveRice || r.RemoveRoti
}

type ListResponse struct {
	Meals []meallog.LoggedMeal `json:"meals"`
	Count int                  `json:"count"`
}

type Summary struct {
	Date      string                          `json:"date"`
	Calories  int                             `json:"calories"`
	Macros    meallog.Macros                  `json:"macros"`
	MealCount meallog.MealCount               `json:"mealCount"`
	ByType    map[string][]meallog.LoggedMeal `json:"byType"`
	MaxPerDay int                             `json:"maxPerDay"`
}

type ClearResponse struct {
	Removed int `json:"removed"`
}

// DailyLimitError is returned when a date already holds the maximum number of entries.
type DailyLimitError struct {
	Max int
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("You have already logged %d meals today.", e.Max)
}
