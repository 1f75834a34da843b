package advice

import "strings"

// Canonical spending categories used by the benchmark profiles.
const (
	CategoryHousing   = "Housing"
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryHealth    = "Health"
	CategoryEducation = "Education"
	CategoryLeisure   = "Leisure"
	CategoryClothing  = "Clothing"
	CategoryUtilities = "Utilities"
	CategoryOther     = "Other"
)

// CanonicalCategories lists the canonical categories in reporting order.
var CanonicalCategories = []string{
	CategoryHousing,
	CategoryFood,
	CategoryTransport,
	CategoryHealth,
	CategoryEducation,
	CategoryLeisure,
	CategoryClothing,
	CategoryUtilities,
	CategoryOther,
}

// discretionaryCategories sum up to the discretionary ratio.
var discretionaryCategories = map[string]bool{
	CategoryLeisure:  true,
	CategoryClothing: true,
	CategoryOther:    true,
}

// categoryLookup maps lower-cased raw category names to a canonical category. English and
// Portuguese names are both accepted.
var categoryLookup = map[string]string{
	"housing":        CategoryHousing,
	"rent":           CategoryHousing,
	"mortgage":       CategoryHousing,
	"home":           CategoryHousing,
	"moradia":        CategoryHousing,
	"aluguel":        CategoryHousing,
	"food":           CategoryFood,
	"groceries":      CategoryFood,
	"restaurants":    CategoryFood,
	"dining":         CategoryFood,
	"alimentação":    CategoryFood,
	"alimentacao":    CategoryFood,
	"mercado":        CategoryFood,
	"transport":      CategoryTransport,
	"transportation": CategoryTransport,
	"car":            CategoryTransport,
	"fuel":           CategoryTransport,
	"transporte":     CategoryTransport,
	"health":         CategoryHealth,
	"healthcare":     CategoryHealth,
	"insurance":      CategoryHealth,
	"saúde":          CategoryHealth,
	"saude":          CategoryHealth,
	"education":      CategoryEducation,
	"school":         CategoryEducation,
	"tuition":        CategoryEducation,
	"educação":       CategoryEducation,
	"educacao":       CategoryEducation,
	"leisure":        CategoryLeisure,
	"entertainment":  CategoryLeisure,
	"travel":         CategoryLeisure,
	"subscriptions":  CategoryLeisure,
	"lazer":          CategoryLeisure,
	"clothing":       CategoryClothing,
	"apparel":        CategoryClothing,
	"vestuário":      CategoryClothing,
	"vestuario":      CategoryClothing,
	"utilities":      CategoryUtilities,
	"internet":       CategoryUtilities,
	"phone":          CategoryUtilities,
	"electricity":    CategoryUtilities,
	"water":          CategoryUtilities,
	"utilidades":     CategoryUtilities,
	"contas":         CategoryUtilities,
	"other":          CategoryOther,
	"outros":         CategoryOther,
}

// CanonicalCategory maps a raw expense category to its canonical category. Unknown names
// fall to Other.
func CanonicalCategory(raw string) string {
	if c, ok := categoryLookup[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CategoryOther
}
