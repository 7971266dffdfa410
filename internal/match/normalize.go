package match

import (
	"strings"
	"unicode"
)

// Normalize folds an identifier or a type spelling for fuzzy matching.
// The normalization pipeline:
// 1. Case-fold to lower.
// 2. Strip separators (_, -, :, spaces).
//
// "std::String" and "stdstring" normalize to the same value, as do
// "default_Max_Attempts" and "defaultmaxattempts".
func Normalize(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ':' || unicode.IsSpace(r)
}
