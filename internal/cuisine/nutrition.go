package cuisine

import (
	"math"
	"strconv"
	"strings"
)

const (
	RiceCaloriesPerGram = 1.3
	RotiCaloriesEach    = 80

	DefaultRiceGrams = 100
	DefaultRotiCount = 2

	MaxPortionSize   = 5.0
	MaxRiceGrams     = 500
	MaxRotiCount     = 10
	MinCalorieTarget = 800
	MaxCalorieTarget = 5000
)

// Validation is the outcome of a single input check.
// Message is empty when the value is valid.
type Validation struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

func valid() Validation {
	return Validation{IsValid: true}
}

func invalid(message string) Validation {
	return Validation{IsValid: false, Message: message}
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (v Validation) Err() error {
	if v.IsValid {
		return nil
	}
	return &ValidationError{Message: v.Message}
}

func ValidatePortionSize(portion float64) Validation {
	if portion <= 0 || math.IsNaN(portion) {
		return invalid("Portion size must be greater than 0.")
	}
	if portion > MaxPortionSize {
		return invalid("Portion size cannot exceed 5x for safety reasons.")
	}
	return valid()
}

func ValidateRiceGrams(grams int) Validation {
	if grams <= 0 {
		return invalid("Rice portion must be greater than 0 grams.")
	}
	if grams > MaxRiceGrams {
		return invalid("Rice portion seems too large. Please select a reasonable amount.")
	}
	return valid()
}

func ValidateRotiCount(count int) Validation {
	if count <= 0 {
		return invalid("Roti count must be at least 1.")
	}
	if count > MaxRotiCount {
		return invalid("Maximum 10 rotis allowed per meal.")
	}
	return valid()
}

// ValidateCalorieTarget checks a free-form calorie target as typed by a user.
// Only the leading integer is considered, so "1800 kcal" reads as 1800.
func ValidateCalorieTarget(raw string) Validation {
	target, ok := ParseLeadingInt(raw)
	if !ok {
		return invalid("Please enter a valid number for calorie target.")
	}
	if target < MinCalorieTarget {
		return invalid("Calorie target should be at least 800 for health safety.")
	}
	if target > MaxCalorieTarget {
		return invalid("Calorie target seems too high. Please consult a nutritionist.")
	}
	return valid()
}

// ParseLeadingInt reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows it.
func ParseLeadingInt(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow: far outside any accepted range anyway
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}

func CalculateRiceCalories(grams int) int {
	return int(math.Round(float64(grams) * RiceCaloriesPerGram))
}

func CalculateRotiCalories(count int) int {
	return count * RotiCaloriesEach
}

// CalculatePortionCalories scales a recipe's base calories by the portion multiplier.
func CalculatePortionCalories(baseCalories int, portion float64) int {
	return int(math.Round(float64(baseCalories) * portion))
}
