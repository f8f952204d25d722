// Package textfold normalizes user text for case and accent insensitive matching.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritics, case-folds and collapses whitespace, so
// "  Acción " and "accion" produce the same key.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return cases.Fold().String(strings.Join(strings.Fields(stripped), " "))
}

// LikePattern returns a folded SQL LIKE pattern matching any value containing s.
// LIKE metacharacters in s are escaped with a backslash.
func LikePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(Fold(s))

	return "%" + escaped + "%"
}
