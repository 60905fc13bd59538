package hunspell

import (
	"strings"
	"unicode"

	"github.com/coregx/hunspell/internal/ascii"
)

// hasSharpS reports whether s contains 'ß', used by the CHECKSHARPS
// exception to KEEPCASE: a case-folded match against a KEEPCASE entry is
// still accepted if either side spells the German sharp s, since "ß" and
// "SS" case-fold into each other without either form being the "exact
// case" of the other.
func hasSharpS(s string) bool {
	if ascii.IsASCII(s) {
		return false
	}
	return strings.ContainsRune(s, 'ß')
}

// isPunctClass reports whether r belongs to the "punctuation-class"
// category used by the WORDCHARS admission sanity rules: neither a
// letter nor a digit.
func isPunctClass(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// startsUpper reports whether word's first rune is upper-case, the
// FORCEUCASE final-form check.
func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
