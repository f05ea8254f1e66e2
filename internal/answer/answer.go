// Package answer checks free-text answers against a list of accepted items.
package answer

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims surrounding whitespace and case-folds s.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// IsValid reports whether answer matches one of the accepted items.
// The match is exact after normalizing both sides; there is no partial
// or fuzzy matching.
func IsValid(answer string, accepted []string) bool {
	want := Normalize(answer)
	for _, item := range accepted {
		if Normalize(item) == want {
			return true
		}
	}
	return false
}
