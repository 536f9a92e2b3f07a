package operators

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const Other = "Other"

// canonical display names for the Permian Basin operators we track,
// keyed by the names the commission files them under. acquisitions
// fold into the acquirer's display name.
var displayNames = map[string]string{
	"PIONEER NATURAL RESOURCES": "ExxonMobil/Pioneer",
	"PIONEER NATURAL RES":       "ExxonMobil/Pioneer",
	"PIONEER NATURAL":           "ExxonMobil/Pioneer",
	"EXXONMOBIL":                "ExxonMobil/Pioneer",
	"EXXON MOBIL":               "ExxonMobil/Pioneer",
	"EXXON":                     "ExxonMobil/Pioneer",
	"XTO ENERGY":                "ExxonMobil/Pioneer",
	"CONOCOPHILLIPS":            "ConocoPhillips",
	"CONOCO PHILLIPS":           "ConocoPhillips",
	"CONOCO":                    "ConocoPhillips",
	"BURLINGTON RESOURCES":      "ConocoPhillips",
	"EOG RESOURCES":             "EOG",
	"EOG RES":                   "EOG",
	"DIAMONDBACK":               "Diamondback",
	"DIAMONDBACK ENERGY":        "Diamondback",
	"DIAMONDBACK E&P":           "Diamondback",
	"VIPER ENERGY":              "Diamondback",
	"ENERGEN":                   "Diamondback",
	"DEVON ENERGY":              "Devon",
	"DEVON":                     "Devon",
	"OCCIDENTAL":                "Occidental",
	"OXY":                       "Occidental",
	"OXY USA":                   "Occidental",
	"ANADARKO":                  "Occidental",
	"ANADARKO PETROLEUM":        "Occidental",
	"ANADARKO E&P":              "Occidental",
	"CHEVRON":                   "Chevron",
	"CHEVRON U.S.A.":            "Chevron",
	"CHEVRON USA":               "Chevron",
	"APACHE":                    "Apache/APA",
	"APA CORPORATION":           "Apache/APA",
	"COTERRA":                   "Coterra",
	"COTERRA ENERGY":            "Coterra",
	"CIMAREX":                   "Coterra",
	"CIMAREX ENERGY":            "Coterra",
	"CALLON":                    "Callon",
	"CALLON PETROLEUM":          "Callon",
}

// filings abbreviate and truncate operator names inconsistently, a
// near-exact match is still the same company
const fuzzyThreshold = 0.95

// Classify maps an operator name as the commission files it to one of
// the tracked display names, or Other.
func Classify(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return Other
	}

	for key, display := range displayNames {
		if strings.Contains(upper, key) {
			return display
		}
	}

	best := Other
	var bestScore float64
	for key, display := range displayNames {
		score := matchr.JaroWinkler(upper, key, false)
		if score > bestScore {
			best, bestScore = display, score
		}
	}
	if bestScore >= fuzzyThreshold {
		return best
	}
	return Other
}
