package mealplans

import "slices"

const DaysPerPage = 4

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// regionalThemes cycles on its own modulus, independent of the weekday and of
// the theme carried by the source template day.
var regionalThemes = []string{
	"North Indian", "South Indian", "Gujarati", "Bengali",
	"Punjabi", "Kerala", "Tamil", "Maharashtrian",
}

// ValidDurations are the plan lengths a user can request, in days.
var ValidDurations = []int{3, 7, 14, 30}

func ValidDuration(days int) bool {
	return slices.Contains(ValidDurations, days)
}

// Expand builds a plan of exactly duration days by cycling base. Day i gets
// weekday i%7, theme i%8 and a copy of the meals of base day i%len(base.Days).
// Plan level totals are carried over from base unchanged.
func Expand(base MealPlan, duration int) MealPlan {
	plan := MealPlan{
		Days:             make([]DayPlan, 0, max(duration, 0)),
		TotalCalories:    base.TotalCalories,
		Macros:           base.Macros,
		AyurvedicBalance: base.AyurvedicBalance,
	}
	if len(base.Days) == 0 {
		return plan
	}

	for i := 0; i < duration; i++ {
		src := base.Days[i%len(base.Days)]
		plan.Days = append(plan.Days, DayPlan{
			Day:           weekdays[i%len(weekdays)],
			RegionalTheme: regionalThemes[i%len(regionalThemes)],
			Meals:         cloneMeals(src.Meals),
		})
	}
	return plan
}

// Page is a window of plan days, numbered from 1.
type Page struct {
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Days       []DayPlan `json:"days"`
}

// Paginate returns page (1-based) of days, DaysPerPage at a time.
// Out of range pages are clamped.
func Paginate(days []DayPlan, page int) Page {
	totalPages := (len(days) + DaysPerPage - 1) / DaysPerPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * DaysPerPage
	end := min(start+DaysPerPage, len(days))
	window := []DayPlan{}
	if start < end {
		window = days[start:end]
	}

	return Page{Page: page, TotalPages: totalPages, Days: window}
}
