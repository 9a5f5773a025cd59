package checker

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// confusables maps visually-confusable characters to their closest plain-ASCII
// look-alike. Keys are lower-case; input is lower-cased before folding.
// Compatibility forms (fullwidth, circled, ligatures) and diacritics are
// already handled by the NFKD pass, so the table only carries look-alikes
// that survive decomposition.
var confusables = map[rune]rune{ //nolint: gochecknoglobals
	// digits and symbols used as letters
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'@': 'a',
	'$': 's',
	'!': 'i',
	'|': 'l',

	// Cyrillic
	'а': 'a',
	'в': 'b',
	'е': 'e',
	'к': 'k',
	'м': 'm',
	'н': 'h',
	'о': 'o',
	'р': 'p',
	'с': 'c',
	'т': 't',
	'у': 'y',
	'х': 'x',
	'і': 'i',
	'ј': 'j',
	'ѕ': 's',
	'ԁ': 'd',
	'ё': 'e',

	// Greek
	'α': 'a',
	'β': 'b',
	'ε': 'e',
	'ι': 'i',
	'κ': 'k',
	'ν': 'v',
	'ο': 'o',
	'ρ': 'p',
	'σ': 's',
	'τ': 't',
	'υ': 'u',
	'χ': 'x',
	'ω': 'w',
}

// decomposer strips diacritics: NFKD decomposition followed by removal of
// combining marks, recomposed to NFC.
var decomposer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC) //nolint: gochecknoglobals

// Normalize folds visually-confusable characters to canonical ASCII, removes
// all whitespace and lower-cases the input. The result is what the keyword
// matcher operates on. Normalization is deterministic: equal inputs always
// produce equal outputs.
func Normalize(input string) string {
	folded, _, err := transform.String(decomposer, input)
	if err != nil {
		// transform only fails on malformed UTF-8; fold what we can
		folded = input
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsSpace(r) {
			continue
		}
		if mapped, ok := confusables[r]; ok {
			r = mapped
		}
		b.WriteRune(r)
	}

	return b.String()
}
