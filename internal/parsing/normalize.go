// Package parsing normalizes free-form résumé and catalog text into the
// lowercase alphanumeric form used for vectorization and skill lookup.
package parsing

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text, replaces every character outside [a-z0-9] with a
// space, collapses whitespace runs to a single space and trims the result.
// The output contains only lowercase ASCII letters, digits and single spaces.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	mapped := strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, text)

	return strings.Join(strings.Fields(mapped), " ")
}

// Tokens returns the whitespace-delimited tokens of the normalized text.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// WordSet returns the set of normalized tokens in text.
func WordSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
