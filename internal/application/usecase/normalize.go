package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var cityTitle = cases.Title(language.Indonesian)

// NormalizePhone reduces a phone number to the canonical international digit
// string: strip everything non-numeric, then rewrite the national 0 prefix (or
// an explicit +62) to 62.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "62"):
		return digits
	case strings.HasPrefix(digits, "0"):
		return "62" + digits[1:]
	default:
		return "62" + digits
	}
}

// CanonicalCity capitalizes a city name ("bandar lampung" -> "Bandar Lampung").
func CanonicalCity(raw string) string {
	return cityTitle.String(strings.TrimSpace(strings.ToLower(raw)))
}
