package restaurant

import "strings"

// Specific cuisine tags as reported by the places API. Scanned in tag
// order; the first match wins.
var specificCuisineTypes = map[string]bool{
	"italian_restaurant":       true,
	"mexican_restaurant":       true,
	"chinese_restaurant":       true,
	"japanese_restaurant":      true,
	"indian_restaurant":        true,
	"thai_restaurant":          true,
	"french_restaurant":        true,
	"greek_restaurant":         true,
	"spanish_restaurant":       true,
	"american_restaurant":      true,
	"korean_restaurant":        true,
	"vietnamese_restaurant":    true,
	"mediterranean_restaurant": true,
	"turkish_restaurant":       true,
	"lebanese_restaurant":      true,
	"cuban_restaurant":         true,
	"peruvian_restaurant":      true,
}

// Known cuisines used as a name-substring fallback, scanned in order.
var knownCuisines = []string{
	"Italian", "Mexican", "Chinese", "Japanese", "Indian", "Thai",
	"French", "Greek", "Spanish", "American", "Korean", "Vietnamese",
	"Mediterranean", "Turkish", "Lebanese", "Cuban", "Peruvian",
	"Brazilian", "Caribbean", "German", "British", "Irish",
	"Portuguese", "Russian", "Scandinavian", "Polish", "Cajun",
	"Creole", "Southern", "Ethiopian", "Moroccan", "Argentinian",
	"Canadian", "Belgian", "Dutch", "Swiss", "Austrian", "Hungarian",
	"Czech", "Slovak", "Ukrainian", "Filipino", "Malaysian",
	"Singaporean", "Indonesian", "Bangladeshi", "Pakistani", "Nepalese",
}

// inferCuisine derives a single cuisine label from the place's category
// tags, falling back to keyword matching against the display name.
// Deterministic: ordered scans, first match wins.
func inferCuisine(types []string, name string) string {
	for _, t := range types {
		if specificCuisineTypes[t] {
			return titleCase(strings.TrimSuffix(t, "_restaurant"))
		}
	}

	lowerName := strings.ToLower(name)
	for _, cuisine := range knownCuisines {
		if strings.Contains(lowerName, strings.ToLower(cuisine)) {
			return cuisine
		}
	}

	return "Unknown"
}

// titleCase uppercases the first letter of each underscore- or
// space-separated word. Tags are plain ASCII identifiers.
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
