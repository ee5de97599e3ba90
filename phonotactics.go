package vlazba

import "strings"

// C is the full Lojban consonant alphabet, in canonical order: the CLI
// passes it whole to the gismu candidate generator under -all-letters, and
// keeps its order when restricting to donor-word letters otherwise.
const C = "bcdfgjklmnprstvxz"

// V is the full Lojban vowel alphabet.
const V = "aeiou"

// validCCInitials lists the 48 word-initial consonant pairs admissible at
// the start of a gismu or rafsi.
var validCCInitials = map[string]bool{
	"bl": true, "br": true, "cf": true, "ck": true, "cl": true, "cm": true,
	"cn": true, "cp": true, "cr": true, "ct": true, "dj": true, "dr": true,
	"dz": true, "fl": true, "fr": true, "gl": true, "gr": true, "jb": true,
	"jd": true, "jg": true, "jm": true, "jv": true, "kl": true, "kr": true,
	"ml": true, "mr": true, "pl": true, "pr": true, "sf": true, "sk": true,
	"sl": true, "sm": true, "sn": true, "sp": true, "sr": true, "st": true,
	"tc": true, "tr": true, "ts": true, "vl": true, "vr": true, "xl": true,
	"xr": true, "zb": true, "zd": true, "zg": true, "zm": true, "zv": true,
}

// forbiddenCC lists medial consonant pairs illegal anywhere in a gismu.
var forbiddenCC = map[string]bool{
	"cx": true, "kx": true, "xc": true, "xk": true, "mz": true,
}

// forbiddenCCC lists consonant triples illegal anywhere in a gismu.
var forbiddenCCC = map[string]bool{
	"ndj": true, "ndz": true, "ntc": true, "nts": true,
}

const (
	sibilants = "cjsz"
	voiced    = "bdgjvz"
	unvoiced  = "cfkpstx"
)

// pairAdmissibleInitial reports whether the two-character word-initial
// prefix pair is one of the 48 admissible initial consonant pairs.
func pairAdmissibleInitial(pair string) bool {
	return validCCInitials[pair]
}

// pairAdmissibleMedial reports whether a medial consonant pair (c1, c2) is
// admissible: neither equal, not a voiced/unvoiced mismatch in either
// order, not both sibilants, and not listed in forbiddenCC.
func pairAdmissibleMedial(c1, c2 byte) bool {
	if c1 == c2 {
		return false
	}
	if strings.IndexByte(voiced, c1) >= 0 && strings.IndexByte(unvoiced, c2) >= 0 {
		return false
	}
	if strings.IndexByte(unvoiced, c1) >= 0 && strings.IndexByte(voiced, c2) >= 0 {
		return false
	}
	if strings.IndexByte(sibilants, c1) >= 0 && strings.IndexByte(sibilants, c2) >= 0 {
		return false
	}
	if forbiddenCC[string([]byte{c1, c2})] {
		return false
	}
	return true
}

// tripleAdmissible reports whether the consonant triple is not one of the
// four forbidden triples.
func tripleAdmissible(triple string) bool {
	return !forbiddenCCC[triple]
}

// looksLikeInitialCC reports whether the two-character prefix starting at
// a medial position would itself be a legal word-initial cluster — used
// only to invalidate medial ccvcv clusters that would cause an illusory
// word-break (spec.md §4.B, "initial CC invalidator").
func looksLikeInitialCC(pair string) bool {
	return validCCInitials[pair]
}

// predicateKind identifies which §4.B rule a compiled shape predicate
// checks, so evalShapePredicates can evaluate a small fixed-size descriptor
// slice inline instead of a chain of heap-allocated closures (spec.md §9).
type predicateKind int

const (
	predicatePair predicateKind = iota
	predicateTriple
	predicateNoInitialCC
)

// shapePredicate is one compiled check against position i of a candidate
// string, synthesized once per shape by compileShapePredicates.
type shapePredicate struct {
	pos  int
	kind predicateKind
}

// compileShapePredicates scans a shape string (e.g. "ccvcv") for adjacent
// "cc" occurrences and installs the predicates described in spec.md §4.B:
// a pair predicate at every "cc", a triple predicate when the following
// letter is also "c", and — for a medial "ccvcv" suffix — the
// initial-CC invalidator.
func compileShapePredicates(shape string) []shapePredicate {
	s := []byte(strings.ToLower(shape))
	n := len(s)
	var preds []shapePredicate
	for i := 0; i < n-1; i++ {
		if s[i] != 'c' || s[i+1] != 'c' {
			continue
		}
		preds = append(preds, shapePredicate{pos: i, kind: predicatePair})
		if i < n-2 && s[i+2] == 'c' {
			preds = append(preds, shapePredicate{pos: i, kind: predicateTriple})
		}
		if i > 0 && i < n-4 && string(s[i:i+5]) == "ccvcv" {
			preds = append(preds, shapePredicate{pos: i, kind: predicateNoInitialCC})
		}
	}
	return preds
}

// evalShapePredicates reports whether candidate x satisfies every compiled
// predicate: the conjunction required by spec.md §4.B.
func evalShapePredicates(preds []shapePredicate, x string) bool {
	for _, p := range preds {
		i := p.pos
		switch p.kind {
		case predicatePair:
			if i == 0 {
				if !pairAdmissibleInitial(x[0:2]) {
					return false
				}
			} else {
				if !pairAdmissibleMedial(x[i], x[i+1]) {
					return false
				}
			}
		case predicateTriple:
			if !tripleAdmissible(x[i : i+3]) {
				return false
			}
		case predicateNoInitialCC:
			if looksLikeInitialCC(x[i : i+2]) {
				return false
			}
		}
	}
	return true
}
