package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fdg312/thali/internal/cuisine"
	"github.com/fdg312/thali/internal/mealplans"
	"github.com/fsnotify/fsnotify"
)

// Source holds the base meal plan template. Without a file path it serves the
// built-in plan; with one it loads the file and can follow edits to it.
type Source struct {
	mu   sync.RWMutex
	plan mealplans.MealPlan
	path string

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// New loads the template from path, or the built-in template when path is empty.
func New(path string) (*Source, error) {
	s := &Source{path: path, plan: mealplans.BaseTemplate()}
	if path == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Template returns a deep copy of the current template.
func (s *Source) Template() mealplans.MealPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan.Clone()
}

func (s *Source) Path() string {
	return s.path
}

// Reload reads the template file again. An unreadable or invalid file leaves
// the current template in place.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}

	plan, err := LoadFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.plan = plan
	s.mu.Unlock()
	return nil
}

// LoadFile parses and validates a template file.
func LoadFile(path string) (mealplans.MealPlan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return mealplans.MealPlan{}, fmt.Errorf("failed to read template: %w", err)
	}

	var plan mealplans.MealPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return mealplans.MealPlan{}, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	if err := Validate(plan); err != nil {
		return mealplans.MealPlan{}, fmt.Errorf("invalid template %s: %w", path, err)
	}
	return plan, nil
}

// Validate checks that plan can be expanded: at least one day, every day has
// meals, every meal has a known type and non-negative calories.
func Validate(plan mealplans.MealPlan) error {
	if len(plan.Days) == 0 {
		return errors.New("template has no days")
	}
	for i, d := range plan.Days {
		if d.Day == "" {
			return fmt.Errorf("day %d has no name", i)
		}
		if len(d.Meals) == 0 {
			return fmt.Errorf("day %s has no meals", d.Day)
		}
		for _, m := range d.Meals {
			if !cuisine.IsMealType(m.Type) {
				return fmt.Errorf("day %s: unknown meal type %q", d.Day, m.Type)
			}
			if m.Calories < 0 {
				return fmt.Errorf("day %s: meal %q has negative calories", d.Day, m.Name)
			}
		}
	}
	if plan.TotalCalories < 0 {
		return errors.New("totalCalories must be >= 0")
	}
	return nil
}

// Watch starts following the template file and reloads it on change.
// The parent directory is watched so editors that replace the file are seen too.
func (s *Source) Watch() error {
	if s.path == "" {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return err
	}

	s.watcher = w
	s.done = make(chan struct{})
	go s.loop()
	log.Printf("INFO templates: watching %s", s.path)
	return nil
}

func (s *Source) loop() {
	defer close(s.done)
	target := filepath.Clean(s.path)

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Printf("WARN templates: reload failed, keeping previous template: %v", err)
				continue
			}
			log.Printf("INFO templates: reloaded %s", s.path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("WARN templates: watcher error: %v", err)
		}
	}
}

// Close stops watching. Safe to call when Watch was never started.
func (s *Source) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	<-s.done
	s.watcher = nil
	return err
}
