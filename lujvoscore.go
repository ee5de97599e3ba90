package vlazba

import "strings"

// rafsiShapeBonus assigns each rafsi shape its per-shape weight in the
// scoring formula of spec.md §4.I. Grounded on original_source's
// get_lujvo_score match arm (jvozba/scoring.rs:8-19): a higher bonus
// lowers the score through the "-10*R_sum" term, so the three-letter CVV
// and CCV forms (8 and 7) are favoured most and the full CVCCV gismu form
// (1) least. Tokens that are not a scored rafsi shape
// at all (a bare hyphen letter) score 0 here; hyphenCount/LujvoScore
// account for those separately via H.
func rafsiShapeBonus(r string) int {
	switch cvInfo(r) {
	case "CVCCV":
		return 1
	case "CVCC":
		return 2
	case "CCVCV":
		return 3
	case "CCVC":
		return 4
	case "CVC":
		return 5
	case "CV'V":
		return 6
	case "CCV":
		return 7
	case "CVV":
		return 8
	default:
		return 0
	}
}

// LujvoScore computes the score of an already-normalized rafsi/hyphen
// token sequence (as returned by normalizeSequence) per spec.md §4.I:
//
//	score = 1000·L − 500·A + 100·H − 10·R_sum − V
//
// where L is the joined sequence's total letter count, A is the number of
// apostrophe characters in it, H is the number of single-character hyphen
// tokens (CV-info "C" or "Y"), R_sum is the sum of rafsiShapeBonus over
// the non-hyphen tokens, and V is the number of vowel letters in the
// joined sequence. Lower scores are preferred. Grounded on
// original_source's get_lujvo_score (jvozba/scoring.rs:1-25).
func LujvoScore(sequence []string) int {
	lujvo := strings.Join(sequence, "")
	l := len(lujvo)
	a := strings.Count(lujvo, "'")

	h := 0
	rSum := 0
	for _, tok := range sequence {
		switch cvInfo(tok) {
		case "C", "Y":
			h++
		default:
			rSum += rafsiShapeBonus(tok)
		}
	}

	v := 0
	for i := 0; i < len(lujvo); i++ {
		if isVowelByte(lujvo[i]) {
			v++
		}
	}

	return 1000*l - 500*a + 100*h - 10*rSum - v
}

// hyphenCount reports how many hyphen tokens normalizeSequence inserts
// for rafsiList, without building the joined string.
func hyphenCount(rafsiList []string) int {
	return len(normalizeSequence(rafsiList)) - len(rafsiList)
}
