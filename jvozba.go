package vlazba

import (
	"sort"
	"strings"
)

// LujvoAndScore pairs a synthesized lujvo with the score Jvozba ranked it
// by (spec.md §4.I), for the caller that wants to see the runner-up forms
// too.
type LujvoAndScore struct {
	Lujvo string
	Score int
}

// forbiddenCmevlaBoundaries are the selrafsi fragments that must never
// appear as the boundary between two rafsi in a lujvo built with
// forbidLaLaiDoi set: "la", "lai" and "doi" there would make the result
// parse as a name-quoting or vocative cmavo sequence rather than a single
// brivla (spec.md §4.J).
var forbiddenCmevlaBoundaries = []string{"la", "lai", "doi"}

// Jvozba synthesizes every lujvo reachable from selrafsiList's candidate
// rafsi substitutions (spec.md §4.J), scores each with LujvoScore, and
// returns them sorted ascending by score (best candidate first). When
// forbidLaLaiDoi is set, any candidate whose rafsi boundary produces
// "la", "lai" or "doi" as a substring is dropped — those readings would be
// re-parsed as the name/vocative cmavo rather than as part of a brivla.
// expRafsi extends the per-selrafsi candidate lookup to the experimental
// rafsi tables.
func Jvozba(selrafsiList []string, forbidLaLaiDoi, expRafsi bool) []LujvoAndScore {
	if len(selrafsiList) == 0 {
		return nil
	}

	perSelrafsi := GetCandid(selrafsiList, expRafsi)

	var results []LujvoAndScore
	seen := make(map[string]bool)

	for _, combo := range cartesianProduct(perSelrafsi) {
		if forbidLaLaiDoi && isForbiddenCmevla(combo) {
			continue
		}

		normalized := normalizeSequence(combo)
		lujvo := strings.Join(normalized, "")
		if seen[lujvo] {
			continue
		}
		seen[lujvo] = true

		results = append(results, LujvoAndScore{Lujvo: lujvo, Score: LujvoScore(normalized)})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Lujvo < results[j].Lujvo
	})

	return results
}

// isForbiddenCmevla reports whether any adjacent rafsi pair in combo would
// place one of forbiddenCmevlaBoundaries at or after the join: a match
// wholly inside the first rafsi is just that rafsi's own spelling and is
// harmless, but one that starts in or crosses into the second rafsi would
// let the result misparse as introducing "la"/"lai"/"doi" right after a
// word boundary.
func isForbiddenCmevla(combo []string) bool {
	for i := 0; i < len(combo)-1; i++ {
		cur, next := combo[i], combo[i+1]
		boundary := cur + next
		for _, f := range forbiddenCmevlaBoundaries {
			for start := 0; start+len(f) <= len(boundary); start++ {
				if start+len(f) > len(cur) && boundary[start:start+len(f)] == f {
					return true
				}
			}
		}
	}
	return false
}

// cartesianProduct returns every selection tuple that picks one element
// from each slice of options, in lexicographic order of the option
// indices.
func cartesianProduct(options [][]string) [][]string {
	if len(options) == 0 {
		return nil
	}

	total := 1
	for _, o := range options {
		if len(o) == 0 {
			return nil
		}
		total *= len(o)
	}

	out := make([][]string, 0, total)
	digits := make([]int, len(options))
	for n := 0; n < total; n++ {
		tuple := make([]string, len(options))
		for i, o := range options {
			tuple[i] = o[digits[i]]
		}
		out = append(out, tuple)

		for i := len(digits) - 1; i >= 0; i-- {
			digits[i]++
			if digits[i] < len(options[i]) {
				break
			}
			digits[i] = 0
		}
	}
	return out
}
