package vlazba

import (
	"strings"

	"github.com/lojban-tools/vlazba/data"
)

// Normalize builds the final lujvo string from an ordered rafsi sequence
// (as chosen by Jvozba from GetCandid), inserting the hyphen letters the
// phonotactics require between adjacent rafsi (spec.md §4.H). rafsiList is
// assumed already shape-valid; Normalize only decides where hyphens go,
// not whether the rafsi themselves are legal.
func Normalize(rafsiList []string) string {
	return strings.Join(normalizeSequence(rafsiList), "")
}

// normalizeSequence builds the alternating rafsi/hyphen token sequence of
// spec.md §4.H right to left, starting from the last rafsi: for each
// preceding rafsi r, decide what (if anything) to prepend before r by
// inspecting only the tokens already built (result), never looking ahead.
// Grounded on original_source's normalize (jvozba/jvozbanarge.rs:84-112).
//
// The loop variable i counts this loop's own iterations, not an index
// into rafsiList: i==0 processes rafsiList[len-2] (the overall penultimate
// rafsi), and i==len(rafsiList)-2 — the loop's last iteration — processes
// rafsiList[0], the first rafsi overall. original_source's vowel-run and
// tosmabru checks both gate on that last iteration, i.e. on the first
// rafsi of the whole list, not the penultimate one.
func normalizeSequence(rafsiList []string) []string {
	if len(rafsiList) == 0 {
		return nil
	}

	result := []string{rafsiList[len(rafsiList)-1]}

	for i := 0; i < len(rafsiList)-1; i++ {
		r := rafsiList[len(rafsiList)-2-i]
		end := r[len(r)-1]
		init := result[0][0]

		isFirstOverall := i == len(rafsiList)-2
		isVowelRun := isCVVShape(r) || isCVAposVShape(r)
		vowelRunNeedsHyphen := isFirstOverall && isVowelRun && shouldAddHyphen(rafsiList, result)

		insertY := is4Letter(r) ||
			(isConsonantByte(end) && isConsonantByte(init) && data.Permissible(end, init) == 0) ||
			(end == 'n' && hasAmbiguousNPrefix(result[0])) ||
			vowelRunNeedsHyphen ||
			(isFirstOverall && isCVCShape(r) && isTosmabru(r, result))

		if insertY {
			result = prepend("y", result)
		}

		// Re-evaluated against the possibly-just-mutated result, matching
		// original_source exactly: this is why the "n" branch below can
		// never actually fire — see the doc comment on shouldAddHyphen.
		if isFirstOverall && isVowelRun && shouldAddHyphen(rafsiList, result) {
			hyphen := "r"
			if strings.HasPrefix(result[0], "r") {
				hyphen = "n"
			}
			result = prepend(hyphen, result)
		}

		result = prepend(r, result)
	}

	return result
}

func prepend(tok string, rest []string) []string {
	out := make([]string, 0, len(rest)+1)
	out = append(out, tok)
	out = append(out, rest...)
	return out
}

// shouldAddHyphen reports whether the vowel-run hyphen ("r" or "n") is
// required in front of the first rafsi overall when it is CVV/CV'V-shaped:
// spec.md §4.H requires it whenever the whole rafsi list has more than two
// elements, or when the token currently leading result is not itself
// CCV-shaped. Grounded on original_source's should_add_hyphen
// (jvozba/jvozbanarge.rs:114-117).
//
// Because normalizeSequence checks this same condition twice — once to
// decide the "y" insertion, again afterward to decide the "r"/"n"
// insertion — and a "y" insertion (when it fires) always runs first, the
// second check only ever sees a leading "y" token, never the real next
// rafsi's initial letter. "y" is not CCV-shaped, so the second check is
// never false when the first one fired true for this same reason, and
// result[0] is then always "y" — which never starts with "r". The "n"
// branch is therefore unreachable; this is a direct, faithfully-ported
// property of original_source's two-if-block structure, not a bug
// introduced here.
func shouldAddHyphen(rafsiList []string, result []string) bool {
	return len(rafsiList) > 2 || !isCCVShape(result[0])
}

// hasAmbiguousNPrefix reports whether next begins with one of the
// digraphs "ts", "tc", "dz", "dj" — the case an "n" ending the preceding
// rafsi would otherwise misread as a single affricate rather than n followed by a
// fricative/stop.
func hasAmbiguousNPrefix(next string) bool {
	for _, pfx := range []string{"ts", "tc", "dz", "dj"} {
		if strings.HasPrefix(next, pfx) {
			return true
		}
	}
	return false
}

// isTosmabru reports whether prepending the CVC-shape rafsi r in front of
// the already-built suffix rest would produce a "tosmabru": a spurious
// stressed syllable near the start of the lujvo. Walks the whole suffix,
// not just its first element: finds the first non-CVC token in rest,
// requires that token be "y" or a CVCCV rafsi whose medial consonant pair
// is permissible-2, then walks every boundary from r through that point
// checking permissible-2, returning true the instant a "y" hyphen is
// crossed. Grounded on original_source's is_tosmabru
// (jvozba/jvozbanarge.rs:119-153).
func isTosmabru(r string, rest []string) bool {
	if isCmevlaWord(rest[len(rest)-1]) {
		return false
	}

	index := -1
	for i, s := range rest {
		if !isCVCShape(s) {
			index = i
			break
		}
	}
	if index == -1 {
		panic("vlazba: tosmabru walk found no non-CVC token in the built suffix")
	}

	if s := rest[index]; s != "y" {
		if cvInfo(s) != "CVCCV" || data.Permissible(s[2], s[3]) != 2 {
			return false
		}
	}

	tmp1 := r
	for _, tmp2 := range rest[:index+1] {
		if tmp2 == "y" {
			return true
		}
		if data.Permissible(tmp1[len(tmp1)-1], tmp2[0]) != 2 {
			return false
		}
		tmp1 = tmp2
	}

	return true
}

// isCmevlaWord reports whether valsi ends in a consonant, i.e. is shaped
// like a name rather than a brivla. Grounded on original_source's
// is_cmevla (jvozba/jvozbanarge.rs:80-82).
func isCmevlaWord(valsi string) bool {
	c := valsi[len(valsi)-1]
	return !isVowelByte(c) && c != 'y' && c != '\''
}

// isCVVShape reports whether r is a three-letter consonant-vowel-vowel
// rafsi, e.g. "rai".
func isCVVShape(r string) bool {
	return len(r) == 3 && isConsonantByte(r[0]) && isVowelByte(r[1]) && isVowelByte(r[2])
}

// isCVAposVShape reports whether r is a four-letter consonant-vowel-
// apostrophe-vowel rafsi, e.g. "ma'a".
func isCVAposVShape(r string) bool {
	return len(r) == 4 && isConsonantByte(r[0]) && isVowelByte(r[1]) && r[2] == '\'' && isVowelByte(r[3])
}

// isCVCShape reports whether r is a three-letter consonant-vowel-consonant
// rafsi, e.g. "tan".
func isCVCShape(r string) bool {
	return len(r) == 3 && isConsonantByte(r[0]) && isVowelByte(r[1]) && isConsonantByte(r[2])
}

// isCCVShape reports whether r is a three-letter consonant-consonant-vowel
// rafsi, e.g. "mri".
func isCCVShape(r string) bool {
	return len(r) == 3 && isConsonantByte(r[0]) && isConsonantByte(r[1]) && isVowelByte(r[2])
}

// is4Letter reports whether r is a four-letter rafsi in CCVC or CVCC
// shape, consonant-final — not to be confused with the CV'V four-letter
// shape, which isCVAposVShape handles separately.
func is4Letter(r string) bool {
	if len(r) != 4 {
		return false
	}
	c, v := isConsonantByte, isVowelByte
	ccvc := c(r[0]) && c(r[1]) && v(r[2]) && c(r[3])
	cvcc := c(r[0]) && v(r[1]) && c(r[2]) && c(r[3])
	return ccvc || cvcc
}
