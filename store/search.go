package store

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks so that "Générale" and
// "generale" compare equal. Built once; transformers are stateless after
// construction.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldName lowercases and removes accents for name matching.
func foldName(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Fall back to the raw string; matching stays case-insensitive.
		folded = s
	}
	return strings.ToLower(folded)
}

// nameMatches reports whether candidate contains the search term,
// accent-insensitive and case-insensitive.
func nameMatches(candidate, term string) bool {
	return strings.Contains(foldName(candidate), foldName(term))
}
