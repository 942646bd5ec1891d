package meallog

// RiceOption is present on a logged meal only when rice was added to it.
type RiceOption struct {
	Selected bool `json:"selected"`
	Grams    int  `json:"grams"`
	Calories int  `json:"calories"`
}

// RotiOption is present on a logged meal only when rotis were added to it.
type RotiOption struct {
	Selected bool `json:"selected"`
	Count    int  `json:"count"`
	Calories int  `json:"calories"`
}

// LoggedMeal is one entry in a user's meal log. JSON field names match the
// format already stored under the logged_meals key.
type LoggedMeal struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Calories   int         `json:"calories"`
	Time       string      `json:"time"`
	Portion    float64     `json:"portion"`
	Date       string      `json:"date"` // YYYY-MM-DD
	RiceOption *RiceOption `json:"riceOption,omitempty"`
	RotiOption *RotiOption `json:"rotiOption,omitempty"`

	// Set by the meals service so calories can be recomputed on edit.
	// Older entries do not carry them.
	BaseCalories int `json:"baseCalories,omitempty"`
	RecipeID     int `json:"recipeId,omitempty"`
}

func (m LoggedMeal) clone() LoggedMeal {
	out := m
	if m.RiceOption != nil {
		rice := *m.RiceOption
		out.RiceOption = &rice
	}
	if m.RotiOption != nil {
		roti := *m.RotiOption
		out.RotiOption = &roti
	}
	return out
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name       *string
	Type       *string
	Calories   *int
	Time       *string
	Portion    *float64
	Date       *string
	RiceOption *RiceOption
	RotiOption *RotiOption
	RemoveRice bool
	RemoveRoti bool

	BaseCalories *int
}

func (p Patch) apply(m *LoggedMeal) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Calories != nil {
		m.Calories = *p.Calories
	}
	if p.Time != nil {
		m.Time = *p.Time
	}
	if p.Portion != nil {
		m.Portion = *p.Portion
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.RemoveRice {
		m.RiceOption = nil
	} else if p.RiceOption != nil {
		rice := *p.RiceOption
		m.RiceOption = &rice
	}
	if p.RemoveRoti {
		m.RotiOption = nil
	} else if p.RotiOption != nil {
		roti := *p.RotiOption
		m.RotiOption = &roti
	}
	if p.BaseCalories != nil {
		m.BaseCalories = *p.BaseCalories
	}
}

// Macros are estimated grams derived from total calories, not measured values.
type Macros struct {
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Calories int `json:"calories"`
}

type MealCount struct {
	Logged    int      `json:"logged"`
	Total     int      `json:"total"`
	Remaining []string `json:"remaining"`
}
