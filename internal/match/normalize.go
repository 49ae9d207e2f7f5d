package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a label for comparison.
//
// The transformation:
//  1. Decomposes to NFD and drops combining marks, so "Väkiluku" and
//     "Vakiluku" compare equal.
//  2. Lower-cases every letter.
//  3. Replaces each run of non-alphanumeric characters (commas, percent
//     signs, hyphens, whitespace) with a single space.
//  4. Trims leading and trailing space.
//
// Normalize is pure, total and idempotent. It never fails; unrecognized
// input simply normalizes to whatever alphanumeric content it carries,
// possibly the empty string.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining mark left over from decomposition. Dropping it is
			// what strips the diacritic from the preceding base character.
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingSpace = true
		}
	}

	return b.String()
}
