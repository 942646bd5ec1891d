package mealplans

// Meal is one slot of a template day. Field names follow the stored plan format.
type Meal struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Calories      int      `json:"calories"`
	Time          string   `json:"time"`
	Region        string   `json:"region"`
	Ingredients   []string `json:"ingredients"`
	CookingMethod string   `json:"cookingMethod"`
}

type DayPlan struct {
	Day           string `json:"day"`
	RegionalTheme string `json:"regionalTheme,omitempty"`
	Meals         []Meal `json:"meals"`
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
	Fiber   int `json:"fiber"`
}

type MealPlan struct {
	Days             []DayPlan `json:"days"`
	TotalCalories    int       `json:"totalCalories"`
	Macros           Macros    `json:"macros"`
	AyurvedicBalance string    `json:"ayurvedicBalance"`
}

func cloneMeals(meals []Meal) []Meal {
	out := make([]Meal, len(meals))
	for i, m := range meals {
		out[i] = m
		out[i].Ingredients = append([]string(nil), m.Ingredients...)
	}
	return out
}

// Clone returns a deep copy.
func (p MealPlan) Clone() MealPlan {
	out := p
	out.Days = make([]DayPlan, len(p.Days))
	for i, d := range p.Days {
		out.Days[i] = DayPlan{
			Day:           d.Day,
			RegionalTheme: d.RegionalTheme,
			Meals:         cloneMeals(d.Meals),
		}
	}
	return out
}

// DayCalories sums the calories of the day's meals.
func (d DayPlan) DayCalories() int {
	total := 0
	for _, m := range d.Meals {
		total += m.Calories
	}
	return total
}
