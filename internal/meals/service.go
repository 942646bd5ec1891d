package meals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fdg312/thali/internal/cuisine"
	"github.com/fdg312/thali/internal/meallog"
	"github.com/fdg312/thali/internal/recipes"
	"github.com/fdg312/thali/internal/session"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("meal not found")

// Service builds log entries from user input and applies the rules the
// aggregator leaves to its callers: calorie derivation and the per-day cap.
type Service struct {
	sessions  *session.Manager
	catalog   *recipes.Catalog
	maxPerDay int
	newID     func() string
}

func NewService(sessions *session.Manager, catalog *recipes.Catalog, maxPerDay int) *Service {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	if catalog == nil {
		catalog = recipes.Default()
	}
	return &Service{
		sessions:  sessions,
		catalog:   catalog,
		maxPerDay: maxPerDay,
		newID:     uuid.NewString,
	}
}

func (s *Service) MaxPerDay() int {
	return s.maxPerDay
}

// Add validates req, derives calories and appends the entry to the user's log.
func (s *Service) Add(ctx context.Context, userID string, req AddMealRequest) (meallog.LoggedMeal, error) {
	name, base, recipeID, err := s.resolveDish(req)
	if err != nil {
		return meallog.LoggedMeal{}, err
	}
	if !cuisine.IsMealType(req.Type) {
		return meallog.LoggedMeal{}, cuisine.NewValidationError("Unknown meal type: " + req.Type)
	}

	portion := 1.0
	if req.Portion != nil {
		portion = *req.Portion
	}
	if err := cuisine.ValidatePortionSize(portion).Err(); err != nil {
		return meallog.LoggedMeal{}, err
	}
	rice, roti, err := buildSides(req.Rice, req.Roti)
	if err != nil {
		return meallog.LoggedMeal{}, err
	}

	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return meallog.LoggedMeal{}, err
	}
	now := sess.Meals.Now()

	date := req.Date
	if date == "" {
		date = sess.Meals.Today()
	} else if err := validateDate(date); err != nil {
		return meallog.LoggedMeal{}, err
	}
	at := strings.TrimSpace(req.Time)
	if at == "" {
		at = now.Format(TimeLayout)
	}

	meal := meallog.LoggedMeal{
		ID:           s.newID(),
		Name:         name,
		Type:         req.Type,
		Calories:     totalCalories(base, portion, rice, roti),
		Time:         at,
		Portion:      portion,
		Date:         date,
		RiceOption:   rice,
		RotiOption:   roti,
		BaseCalories: base,
		RecipeID:     recipeID,
	}

	sess.Lock()
	defer sess.Unlock()

	if len(sess.Meals.On(date)) >= s.maxPerDay {
		return meallog.LoggedMeal{}, &DailyLimitError{Max: s.maxPerDay}
	}
	if err := sess.Meals.Add(ctx, meal); err != nil {
		return meallog.LoggedMeal{}, err
	}
	return meal, nil
}

func (s *Service) resolveDish(req AddMealRequest) (string, int, int, error) {
	if (req.RecipeID == nil && strings.TrimSpace(req.Name) == "") || req.Type == "" {
		return "", 0, 0, cuisine.NewValidationError("Please select both a recipe and meal type.")
	}

	if req.RecipeID != nil {
		recipe, ok := s.catalog.Get(*req.RecipeID)
		if !ok {
			return "", 0, 0, cuisine.NewValidationError(fmt.Sprintf("Unknown recipe: %d", *req.RecipeID))
		}
		return recipe.Name, recipe.Calories, recipe.ID, nil
	}

	if req.BaseCalories == nil {
		return "", 0, 0, cuisine.NewValidationError("Please enter calories for a custom meal.")
	}
	if *req.BaseCalories < 0 {
		return "", 0, 0, cuisine.NewValidationError("Calories cannot be negative.")
	}
	return strings.TrimSpace(req.Name), *req.BaseCalories, 0, nil
}

func buildSides(riceIn *RiceInput, rotiIn *RotiInput) (*meallog.RiceOption, *meallog.RotiOption, error) {
	var rice *meallog.RiceOption
	var roti *meallog.RotiOption

	if riceIn != nil {
		if err := cuisine.ValidateRiceGrams(riceIn.Grams).Err(); err != nil {
			return nil, nil, err
		}
		rice = &meallog.RiceOption{
			Selected: true,
			Grams:    riceIn.Grams,
			Calories: cuisine.CalculateRiceCalories(riceIn.Grams),
		}
	}
	if rotiIn != nil {
		if err := cuisine.ValidateRotiCount(rotiIn.Count).Err(); err != nil {
			return nil, nil, err
		}
		roti = &meallog.RotiOption{
			Selected: true,
			Count:    rotiIn.Count,
			Calories: cuisine.CalculateRotiCalories(rotiIn.Count),
		}
	}
	return rice, roti, nil
}

func totalCalories(base int, portion float64, rice *meallog.RiceOption, roti *meallog.RotiOption) int {
	total := cuisine.CalculatePortionCalories(base, portion)
	if rice != nil {
		total += rice.Calories
	}
	if roti != nil {
		total += roti.Calories
	}
	return total
}

// baseOf recovers the one-portion calories of an entry. Entries written
// before BaseCalories existed are derived back from their stored total.
func baseOf(m meallog.LoggedMeal) int {
	if m.BaseCalories > 0 {
		return m.BaseCalories
	}
	sides := 0
	if m.RiceOption != nil {
		sides += m.RiceOption.Calories
	}
	if m.RotiOption != nil {
		sides += m.RotiOption.Calories
	}
	portion := m.Portion
	if portion <= 0 {
		portion = 1
	}
	return max(int(math.Round(float64(m.Calories-sides)/portion)), 0)
}

func validateDate(date string) error {
	if _, err := time.Parse(meallog.DateLayout, date); err != nil {
		return cuisine.NewValidationError("date must be YYYY-MM-DD")
	}
	return nil
}

// Update applies req to the entry with id.
func (s *Service) Update(ctx context.Context, userID, id string, req UpdateMealRequest) (meallog.LoggedMeal, error) {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return meallog.LoggedMeal{}, err
	}

	sess.Lock()
	defer sess.Unlock()

	current, ok := sess.Meals.Get(id)
	if !ok {
		return meallog.LoggedMeal{}, ErrNotFound
	}

	patch := meallog.Patch{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return meallog.LoggedMeal{}, cuisine.NewValidationError("Meal name cannot be empty.")
		}
		patch.Name = &name
	}
	if req.Type != nil {
		if !cuisine.IsMealType(*req.Type) {
			return meallog.LoggedMeal{}, cuisine.NewValidationError("Unknown meal type: " + *req.Type)
		}
		patch.Type = req.Type
	}
	if req.Time != nil {
		patch.Time = req.Time
	}
	if req.Date != nil && *req.Date != current.Date {
		if err := validateDate(*req.Date); err != nil {
			return meallog.LoggedMeal{}, err
		}
		if len(sess.Meals.On(*req.Date)) >= s.maxPerDay {
			return meallog.LoggedMeal{}, &DailyLimitError{Max: s.maxPerDay}
		}
		patch.Date = req.Date
	}

	if req.changesCalories() {
		portion := current.Portion
		if req.Portion != nil {
			if err := cuisine.ValidatePortionSize(*req.Portion).Err(); err != nil {
				return meallog.LoggedMeal{}, err
			}
			portion = *req.Portion
		}
		rice, roti, err := buildSides(req.Rice, req.Roti)
		if err != nil {
			return meallog.LoggedMeal{}, err
		}
		if rice == nil && !req.RemoveRice {
			rice = current.RiceOption
		}
		if roti == nil && !req.RemoveRoti {
			roti = current.RotiOption
		}

		base := baseOf(current)
		calories := totalCalories(base, portion, rice, roti)
		patch.Portion = &portion
		patch.Calories = &calories
		patch.BaseCalories = &base
		patch.RiceOption = rice
		patch.RotiOption = roti
		patch.RemoveRice = rice == nil
		patch.RemoveRoti = roti == nil
	}

	updated, found, err := sess.Meals.Update(ctx, id, patch)
	if err != nil {
		return meallog.LoggedMeal{}, err
	}
	if !found {
		return meallog.LoggedMeal{}, ErrNotFound
	}
	return updated, nil
}

func (s *Service) Remove(ctx context.Context, userID, id string) error {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()

	removed, err := sess.Meals.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ClearToday(ctx context.Context, userID string) (int, error) {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return 0, err
	}

	sess.Lock()
	defer sess.Unlock()
	return sess.Meals.ClearToday(ctx)
}

func (s *Service) ClearAll(ctx context.Context, userID string) error {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	return sess.Meals.ClearAll(ctx)
}

// List returns entries for scope "today" (default), "all", or a single YYYY-MM-DD date.
func (s *Service) List(ctx context.Context, userID, scope, date string) ([]meallog.LoggedMeal, error) {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return nil, err
	}

	if date != "" {
		if err := validateDate(date); err != nil {
			return nil, err
		}
		return sess.Meals.On(date), nil
	}

	switch scope {
	case "", "today":
		return sess.Meals.TodaysMeals(), nil
	case "all":
		return sess.Meals.All(), nil
	default:
		return nil, cuisine.NewValidationError("scope must be one of: today, all")
	}
}

// Summary collects today's derived views.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	today := sess.Meals.Today()
	todays := sess.Meals.On(today)
	byType := make(map[string][]meallog.LoggedMeal, len(cuisine.MealTypes))
	for _, t := range cuisine.MealTypes {
		byType[t] = []meallog.LoggedMeal{}
	}
	for _, m := range todays {
		if _, ok := byType[m.Type]; ok {
			byType[m.Type] = append(byType[m.Type], m)
		}
	}

	calories := meallog.SumCalories(todays)
	return Summary{
		Date:      today,
		Calories:  calories,
		Macros:    meallog.EstimateMacros(calories),
		MealCount: meallog.CountMeals(todays),
		ByType:    byType,
		MaxPerDay: s.maxPerDay,
	}, nil
}
