package vlazba

// defaultStemLength is the stem-match prefix length used by
// FindSimilarGismu when no explicit length is given (spec.md §4.G).
const defaultStemLength = 4

// FindSimilarGismu returns the first gismu in inventory (in inventory
// order) that collides with candidate under either the stem-match or the
// structural-match rule of spec.md §4.G, or "", false if none collides.
// stemLength <= 0 selects the default of 4.
func FindSimilarGismu(candidate string, inventory []string, stemLength int) (string, bool) {
	if stemLength <= 0 {
		stemLength = defaultStemLength
	}

	for _, g := range inventory {
		if matchStem(candidate, g, stemLength) || matchStructure(candidate, g) {
			return g, true
		}
	}
	return "", false
}

// matchStem reports whether the first stemLength characters of candidate
// are a prefix of g.
func matchStem(candidate, g string, stemLength int) bool {
	return len(candidate) >= stemLength && len(g) >= stemLength && candidate[:stemLength] == g[:stemLength]
}

// matchStructure reports whether candidate and g agree everywhere in
// their common-length prefix except at one index i, where the pair
// (candidate[i], g[i]) is listed as confusable in the similarities table;
// a candidate letter with no entry there (any vowel) accepts any g[i].
func matchStructure(candidate, g string) bool {
	commonLen := len(candidate)
	if len(g) < commonLen {
		commonLen = len(g)
	}
	for i := 0; i < commonLen; i++ {
		if stringsMatchExcept(candidate, g, i, commonLen) && structuralPatternMatch(candidate[i], g[i]) {
			return true
		}
	}
	return false
}

// stringsMatchExcept reports whether x and y agree on every position in
// [0, n) except index i.
func stringsMatchExcept(x, y string, i, n int) bool {
	return x[:i] == y[:i] && x[i+1:n] == y[i+1:n]
}

// structuralPatternMatch reports whether confusable is in the
// similarities set for letter (or true if letter has no entry, matching
// the "." wildcard of the original pattern table).
func structuralPatternMatch(letter, confusable byte) bool {
	pattern, ok := similarities[letter]
	if !ok {
		return true
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == confusable {
			return true
		}
	}
	return false
}
