package recipes

import (
	"slices"
	"strings"
)

type Recipe struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Region          string   `json:"region"` // North, South, East, West
	State           string   `json:"state,omitempty"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty"`
	TimeMinutes     int      `json:"time"`
	Servings        int      `json:"servings"`
	Rating          float64  `json:"rating"`
	Calories        int      `json:"calories"`
	Tags            []string `json:"tags"`
	Description     string   `json:"description"`
	SpiceLevel      string   `json:"spiceLevel"`
	MainIngredients []string `json:"mainIngredients"`
}

func (r Recipe) clone() Recipe {
	out := r
	out.Tags = slices.Clone(r.Tags)
	out.MainIngredients = slices.Clone(r.MainIngredients)
	return out
}

var (
	Categories  = []string{"Dal", "Sabzi", "Rice", "Bread", "Curry", "Snacks", "Sweets"}
	Regions     = []string{"North", "South", "East", "West"}
	SpiceLevels = []string{"Mild", "Medium", "Spicy"}
)

// Filter narrows a catalog search. Empty fields and "all" match everything.
type Filter struct {
	Query      string
	Category   string
	Region     string
	SpiceLevel string
}

// Catalog is a read-only recipe collection.
type Catalog struct {
	recipes []Recipe
	byID    map[int]int
}

func NewCatalog(recipes []Recipe) *Catalog {
	c := &Catalog{
		recipes: make([]Recipe, len(recipes)),
		byID:    make(map[int]int, len(recipes)),
	}
	for i, r := range recipes {
		c.recipes[i] = r.clone()
		c.byID[r.ID] = i
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return NewCatalog(builtin)
}

func (c *Catalog) Len() int {
	return len(c.recipes)
}

func (c *Catalog) Get(id int) (Recipe, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[idx].clone(), true
}

// Search matches the query case-insensitively against name, tags and main
// ingredients, then applies the exact-match filters.
func (c *Catalog) Search(f Filter) []Recipe {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := []Recipe{}
	for _, r := range c.recipes {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		if !matchesOption(r.Category, normalizeCategory(f.Category)) {
			continue
		}
		if !matchesOption(r.Region, f.Region) || !matchesOption(r.SpiceLevel, f.SpiceLevel) {
			continue
		}
		out = append(out, r.clone())
	}
	return out
}

// SearchByNameOrIngredient is the narrower match used when picking a recipe
// to log: tags are not considered.
func (c *Catalog) SearchByNameOrIngredient(query string) []Recipe {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []Recipe{}
	for _, r := range c.recipes {
		if query == "" || strings.Contains(strings.ToLower(r.Name), query) || containsFold(r.MainIngredients, query) {
			out = append(out, r.clone())
		}
	}
	return out
}

func matchesQuery(r Recipe, query string) bool {
	return strings.Contains(strings.ToLower(r.Name), query) ||
		containsFold(r.Tags, query) ||
		containsFold(r.MainIngredients, query)
}

func containsFold(values []string, query string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

func matchesOption(value, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.EqualFold(value, want)
}

// "Rice Dishes" is how the category is labelled in pickers.
func normalizeCategory(category string) string {
	if strings.EqualFold(strings.TrimSpace(category), "rice dishes") {
		return "Rice"
	}
	return category
}
