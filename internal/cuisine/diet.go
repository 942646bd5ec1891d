package cuisine

import "slices"

const (
	RestrictionJain          = "Jain"
	RestrictionSattvic       = "Sattvic"
	RestrictionNoOnionGarlic = "No Onion/Garlic"
	RestrictionPureVeg       = "Pure Vegetarian"
	RestrictionSwaminarayan  = "Swaminarayan"
	RestrictionGlutenFree    = "Gluten-Free"
	RestrictionDairyFree     = "Dairy-Free"
	RestrictionNutFree       = "Nut-Free"
)

const DefaultDietType = "North Indian"

// DietTypes lists the regional cuisines a plan can be generated for.
var DietTypes = []string{
	"North Indian",
	"South Indian",
	"Gujarati",
	"Bengali",
	"Punjabi",
	"Kerala",
	"Tamil",
	"Maharashtrian",
}

var Restrictions = []string{
	RestrictionJain,
	RestrictionSattvic,
	RestrictionNoOnionGarlic,
	RestrictionPureVeg,
	RestrictionSwaminarayan,
	RestrictionGlutenFree,
	RestrictionDairyFree,
	RestrictionNutFree,
}

var AyurvedicGoals = []string{
	"Weight Loss",
	"Muscle Gain",
	"Digestive Health",
	"Immunity Boost",
	"Detox",
	"Energy Balance",
	"Heart Health",
}

func IsDietType(v string) bool { return slices.Contains(DietTypes, v) }

func IsRestriction(v string) bool { return slices.Contains(Restrictions, v) }

func IsAyurvedicGoal(v string) bool { return slices.Contains(AyurvedicGoals, v) }

// ValidateDietCombination checks that religious and traditional restrictions
// are consistent with each other. Rules are evaluated Jain, Sattvic, then
// Swaminarayan, and only the first failure is reported.
//
// dietType does not affect the outcome today.
func ValidateDietCombination(dietType string, restrictions []string) Validation {
	has := func(r string) bool { return slices.Contains(restrictions, r) }

	for _, tradition := range []string{RestrictionJain, RestrictionSattvic} {
		if !has(tradition) {
			continue
		}
		if has(RestrictionNoOnionGarlic) {
			return invalid(tradition + " diet already excludes onion and garlic. Please remove the 'No Onion/Garlic' restriction.")
		}
		if !has(RestrictionPureVeg) {
			return invalid(tradition + " diet requires Pure Vegetarian restriction. Please add it to your preferences.")
		}
	}

	if has(RestrictionSwaminarayan) {
		if !has(RestrictionPureVeg) {
			return invalid("Swaminarayan diet requires Pure Vegetarian restriction. Please add it to your preferences.")
		}
		if !has(RestrictionNoOnionGarlic) {
			return invalid("Swaminarayan diet excludes onion and garlic. Please add 'No Onion/Garlic' restriction.")
		}
	}

	return valid()
}

// MacroProfile is the share of calories from each macronutrient.
type MacroProfile struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

var regionalMacroProfiles = map[string]MacroProfile{
	"North Indian":  {Protein: 0.15, Carbs: 0.55, Fat: 0.30},
	"South Indian":  {Protein: 0.12, Carbs: 0.65, Fat: 0.23},
	"Gujarati":      {Protein: 0.10, Carbs: 0.60, Fat: 0.30},
	"Bengali":       {Protein: 0.18, Carbs: 0.50, Fat: 0.32},
	"Punjabi":       {Protein: 0.16, Carbs: 0.50, Fat: 0.34},
	"Kerala":        {Protein: 0.14, Carbs: 0.58, Fat: 0.28},
	"Tamil":         {Protein: 0.13, Carbs: 0.62, Fat: 0.25},
	"Maharashtrian": {Protein: 0.14, Carbs: 0.56, Fat: 0.30},
}

// RegionalMacroProfile falls back to the North Indian split for unknown cuisines.
func RegionalMacroProfile(dietType string) MacroProfile {
	if p, ok := regionalMacroProfiles[dietType]; ok {
		return p
	}
	return regionalMacroProfiles[DefaultDietType]
}
