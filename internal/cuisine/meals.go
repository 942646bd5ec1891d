package cuisine

import "slices"

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// MealTypes is the canonical slot order used everywhere a day is listed.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

func IsMealType(v string) bool {
	return slices.Contains(MealTypes, v)
}
