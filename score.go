package vlazba

import "sync"

// lcsLength returns the length of the longest common subsequence of a and
// b, computed with the standard O(|a|·|b|) byte-wise dynamic program
// (spec.md §4.E).
func lcsLength(a, b string) int {
	w := len(b) + 1
	h := len(a) + 1
	matrix := make([]int, w*h)

	for ix := 0; ix < len(a); ix++ {
		for iy := 0; iy < len(b); iy++ {
			i := ix*w + iy
			if a[ix] == b[iy] {
				matrix[i+w+1] = matrix[i] + 1
			} else if matrix[i+1] > matrix[i+w] {
				matrix[i+w+1] = matrix[i+1]
			} else {
				matrix[i+w+1] = matrix[i+w]
			}
		}
	}

	return matrix[len(matrix)-1]
}

// dyadPatternScore implements the "LCS == 2" fallback of spec.md §4.E: a
// candidate with only a length-2 subsequence match against the donor word
// still scores 2 if some adjacent pair of candidate letters shows up as a
// substring of the donor's even- or odd-indexed letters, or failing that,
// anywhere in the donor word itself.
func dyadPatternScore(candidate, word string) float64 {
	l := len(candidate)
	if l < 2 {
		return 0
	}

	var even, odd []byte
	for i := 0; i < len(word); i++ {
		if i%2 == 0 {
			even = append(even, word[i])
		} else {
			odd = append(odd, word[i])
		}
	}
	evenS, oddS := string(even), string(odd)

	for i := 0; i <= l-3; i++ {
		dyad := candidate[i : i+2]
		if containsSubstring(evenS, dyad) || containsSubstring(oddS, dyad) {
			return 2
		}
	}
	for i := 0; i <= l-2; i++ {
		dyad := candidate[i : i+2]
		if containsSubstring(word, dyad) {
			return 2
		}
	}
	return 0
}

func containsSubstring(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

// Score computes the weighted similarity of candidate against donors,
// weighted by weights (same length as donors), per spec.md §4.E. It
// returns the weighted sum together with the per-donor normalized score
// vector.
func Score(candidate string, donors []string, weights []float64) (float64, []float64) {
	perDonor := make([]float64, len(donors))
	for i, w := range donors {
		l := lcsLength(candidate, w)
		var raw float64
		switch {
		case l <= 1:
			raw = 0
		case l == 2:
			raw = dyadPatternScore(candidate, w)
		default:
			raw = float64(l)
		}
		perDonor[i] = raw / float64(len(w))
	}

	var sum float64
	for i, s := range perDonor {
		sum += s * weights[i]
	}
	return sum, perDonor
}

// ScoredCandidate pairs a gismu candidate string with its weighted score
// and per-donor score vector, as returned by ScoreAll.
type ScoredCandidate struct {
	Candidate string
	Score     float64
	PerDonor  []float64
}

// ScoreAll scores every candidate against donors/weights in parallel — the
// data-parallel map over the candidate sequence called for by spec.md §5.
// Output order matches the input candidates slice.
func ScoreAll(candidates []string, donors []string, weights []float64) []ScoredCandidate {
	results := make([]ScoredCandidate, len(candidates))

	const minParallelWork = 64
	if len(candidates) < minParallelWork {
		for i, c := range candidates {
			sum, per := Score(c, donors, weights)
			results[i] = ScoredCandidate{Candidate: c, Score: sum, PerDonor: per}
		}
		return results
	}

	workers := 8
	chunk := (len(candidates) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(candidates); start += chunk {
		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				sum, per := Score(candidates[i], donors, weights)
				results[i] = ScoredCandidate{Candidate: candidates[i], Score: sum, PerDonor: per}
			}
		}(start, end)
	}
	wg.Wait()

	return results
}
