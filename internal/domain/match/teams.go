package match

import "strings"

// shortCodeByName maps lowercase full country names to canonical short
// codes. The scorecard exports are inconsistent about full names versus
// codes, so unknown names fall back to the first three letters uppercased.
var shortCodeByName = map[string]string{
	"india":        "IND",
	"new zealand":  "NZ",
	"australia":    "AUS",
	"england":      "ENG",
	"pakistan":     "PAK",
	"south africa": "SA",
	"sri lanka":    "SL",
	"bangladesh":   "BAN",
	"west indies":  "WI",
	"afghanistan":  "AFG",
	"ireland":      "IRE",
	"zimbabwe":     "ZIM",
	"scotland":     "SCO",
	"netherlands":  "NED",
	"nepal":        "NEP",
	"uae":          "UAE",
	"oman":         "OMN",
	"namibia":      "NAM",
	"usa":          "USA",
	"canada":       "CAN",
}

// ShortCode resolves a free-text team name to its canonical short code.
// Returns "" only for empty input.
func ShortCode(teamName string) string {
	normalized := strings.ToLower(strings.TrimSpace(teamName))
	if normalized == "" {
		return ""
	}
	if code, ok := shortCodeByName[normalized]; ok {
		return code
	}
	if len(normalized) < 3 {
		return strings.ToUpper(normalized)
	}
	return strings.ToUpper(normalized[:3])
}
