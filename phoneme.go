// Package vlazba implements the phonotactic rule engine, lujvo
// normalization and decomposition, and gismu similarity scoring for the
// Lojban compound-word morphology system described in spec.md: gismu
// synthesis (enumerate and score candidate root words) and lujvo
// synthesis/analysis (splice rafsi into a compound word, and parse one
// back apart).
//
// The package is pure and stateless beyond the read-only static tables in
// similarities.go, weights.go, phonotactics.go and the data package: all
// exported functions are safe for concurrent use.
package vlazba

import "fmt"

// cvInfo maps each character of s to its CV-pattern letter: 'V' for a
// vowel, 'C' for a consonant, '\'' for an apostrophe, 'Y' for the hyphen
// letter y. Any other character is a programmer error — the caller should
// have validated its input before reaching here.
func cvInfo(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isVowelByte(c):
			out[i] = 'V'
		case isConsonantByte(c):
			out[i] = 'C'
		case c == '\'':
			out[i] = '\''
		case c == 'y':
			out[i] = 'Y'
		default:
			panic(fmt.Sprintf("vlazba: unexpected character %q in cvInfo(%q)", c, s))
		}
	}
	return string(out)
}

// isVowelByte reports whether c is one of the five Lojban vowels.
func isVowelByte(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// isConsonantByte reports whether c is one of the seventeen Lojban
// consonants.
func isConsonantByte(c byte) bool {
	switch c {
	case 'b', 'c', 'd', 'f', 'g', 'j', 'k', 'l', 'm', 'n', 'p', 'r', 's', 't', 'v', 'x', 'z':
		return true
	}
	return false
}

// isC reports whether the single-character string c is a Lojban consonant.
// Panics if c is not exactly one byte.
func isC(c string) bool {
	if len(c) != 1 {
		panic(fmt.Sprintf("vlazba: isC expects a single character, got %q", c))
	}
	return isConsonantByte(c[0])
}

// isV reports whether the single-character string c is a Lojban vowel.
func isV(c string) bool {
	if len(c) != 1 {
		panic(fmt.Sprintf("vlazba: isV expects a single character, got %q", c))
	}
	return isVowelByte(c[0])
}
