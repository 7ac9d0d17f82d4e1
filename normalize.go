package reviewsense

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// quoteFolder maps typographic quotes onto ASCII so "don’t" and "don't"
// scan the same.
var quoteFolder = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

// lowerText returns the NFC-normalized, quote-folded, lowercased form of s
// used for every keyword, negation and marker scan. A Caser is stateful, so
// one is built per call.
func lowerText(s string) string {
	return cases.Lower(language.Und).String(quoteFolder.Replace(norm.NFC.String(s)))
}

// truncateRunes returns at most n characters of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
