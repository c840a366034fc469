package utils

import (
	"strings"
	"unicode"
)

// NormalizeText collapses whitespace, lowercases the text and strips
// everything that is not a letter or a space. Novelist names and book titles
// are stored in this form.
func NormalizeText(text string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsLetter(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
