package mealplans

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fdg312/thali/internal/cuisine"
	"github.com/fdg312/thali/internal/session"
	"github.com/fdg312/thali/internal/storage"
)

const savedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrNoDraft is returned by Save before any plan was generated.
var ErrNoDraft = cuisine.NewValidationError("Please generate a meal plan first.")

// TemplateSource supplies the base template plans are expanded from.
type TemplateSource interface {
	Template() MealPlan
}

type builtinTemplate struct{}

func (builtinTemplate) Template() MealPlan { return BaseTemplate() }

type draft struct {
	plan        MealPlan
	preferences Preferences
}

// Service generates plans, keeps the latest one per user as an unsaved
// draft, and reads and writes the saved plan slot.
type Service struct {
	sessions  *session.Manager
	templates TemplateSource
	now       func() time.Time

	mu     sync.Mutex
	drafts map[string]draft
}

// NewService создаёт сервис планов. templates may be nil for the built-in template.
func NewService(sessions *session.Manager, templates TemplateSource) *Service {
	if templates == nil {
		templates = builtinTemplate{}
	}
	s := &Service{
		sessions:  sessions,
		templates: templates,
		now:       time.Now,
		drafts:    make(map[string]draft),
	}
	sessions.OnClose(s.dropDraft)
	return s
}

func (s *Service) dropDraft(userID string) {
	s.mu.Lock()
	delete(s.drafts, userID)
	s.mu.Unlock()
}

// Template returns the current base template.
func (s *Service) Template() MealPlan {
	return s.templates.Template()
}

// Generate validates prefs and expands the base template to the requested
// duration. The result replaces the user's draft.
func (s *Service) Generate(ctx context.Context, userID string, prefs Preferences) (MealPlan, Preferences, error) {
	prefs = prefs.withDefaults()
	if err := prefs.Validate(); err != nil {
		return MealPlan{}, prefs, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.sessions.Open(ctx, userID); err != nil {
		return MealPlan{}, prefs, err
	}

	days, _ := prefs.DurationDays()
	plan := Expand(s.templates.Template(), days)

	s.mu.Lock()
	s.drafts[userID] = draft{plan: plan.Clone(), preferences: prefs}
	s.mu.Unlock()

	return plan, prefs, nil
}

// Draft returns the last generated, unsaved plan.
func (s *Service) Draft(userID string) (MealPlan, Preferences, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[userID]
	if !ok {
		return MealPlan{}, Preferences{}, false
	}
	return d.plan.Clone(), d.preferences, true
}

// Save writes the draft to the saved plan slot, replacing any earlier save.
func (s *Service) Save(ctx context.Context, userID string) (SavedPlan, error) {
	plan, prefs, ok := s.Draft(userID)
	if !ok {
		return SavedPlan{}, fmt.Errorf("validation failed: %w", ErrNoDraft)
	}

	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return SavedPlan{}, err
	}

	saved := SavedPlan{
		MealPlan:    plan,
		SavedAt:     s.now().UTC().Format(savedAtLayout),
		Preferences: prefs,
	}
	raw, err := json.Marshal(saved)
	if err != nil {
		return SavedPlan{}, fmt.Errorf("failed to encode meal plan: %w", err)
	}

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Store.Set(ctx, storage.KeySavedMealPlan, raw); err != nil {
		return SavedPlan{}, fmt.Errorf("failed to save meal plan: %w", err)
	}
	return saved, nil
}

// GetSaved reads the saved plan. A corrupt stored value is logged and
// reported as absent.
func (s *Service) GetSaved(ctx context.Context, userID string) (SavedPlan, bool, error) {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return SavedPlan{}, false, err
	}

	raw, found, err := sess.Store.Get(ctx, storage.KeySavedMealPlan)
	if err != nil {
		return SavedPlan{}, false, fmt.Errorf("failed to load meal plan: %w", err)
	}
	if !found || len(raw) == 0 {
		return SavedPlan{}, false, nil
	}

	var saved SavedPlan
	if err := json.Unmarshal(raw, &saved); err != nil {
		log.Printf("WARN mealplans: corrupt %s value for user=%s: %v", storage.KeySavedMealPlan, userID, err)
		return SavedPlan{}, false, nil
	}
	if saved.Days == nil {
		saved.Days = []DayPlan{}
	}
	return saved, true, nil
}

func (s *Service) DeleteSaved(ctx context.Context, userID string) error {
	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	if err := sess.Store.Delete(ctx, storage.KeySavedMealPlan); err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return nil
}
