package vlazba

import "fmt"

// Jvokaha decomposes a surface lujvo back into its underlying rafsi
// sequence (spec.md §4.K), greedily consuming hyphens and rafsi shapes
// left to right, then verifies the result round-trips: Normalize of the
// recovered sequence must reproduce the input lujvo exactly. A lujvo that
// fails to segment is reported as an error naming the input; one whose
// segmentation does not round-trip is reported as an error that also names
// the canonical form Normalize produced from that segmentation.
func Jvokaha(lujvo string) ([]string, error) {
	pieces, ok := jvokaha2(lujvo, 0)
	if !ok {
		return nil, fmt.Errorf("jvokaha: %q does not segment into a valid rafsi sequence", lujvo)
	}

	canonical := Normalize(pieces)
	if canonical != lujvo {
		return nil, fmt.Errorf("jvokaha: %q does not round-trip (canonical form is %q)", lujvo, canonical)
	}

	return pieces, nil
}

// jvokaha2 greedily segments lujvo[pos:] into rafsi, shedding hyphen
// letters as it goes, and reports whether the whole remainder was
// consumed by some combination of shape choices.
func jvokaha2(lujvo string, pos int) ([]string, bool) {
	if pos == len(lujvo) {
		return nil, true
	}

	if pos > 0 {
		if c := lujvo[pos]; c == 'y' || c == 'r' || c == 'n' {
			if rest, ok := jvokaha2(lujvo, pos+1); ok {
				return rest, true
			}
		}
	}

	for _, n := range []int{3, 4, 5} {
		if pos+n > len(lujvo) {
			continue
		}
		piece := lujvo[pos : pos+n]
		if !isValidRafsiShape(piece, pos+n == len(lujvo)) {
			continue
		}
		if rest, ok := jvokaha2(lujvo, pos+n); ok {
			return append([]string{piece}, rest...), true
		}
	}

	return nil, false
}

// isValidRafsiShape reports whether piece is a shape Jvokaha accepts at
// this point in the scan: a three-letter CVC/CCV/CVV rafsi always, a
// four-letter CVCC/CCVC/CV'V rafsi always, or a five-letter CVCCV/CCVCV
// full gismu form only when it is the terminal piece of the lujvo.
func isValidRafsiShape(piece string, isTerminal bool) bool {
	switch len(piece) {
	case 3:
		return isCVCShape(piece) || isCCVShape(piece) || isCVVShape(piece)
	case 4:
		return is4Letter(piece) || isCVAposVShape(piece)
	case 5:
		return isTerminal && isFullGismuShape(piece)
	default:
		return false
	}
}

// isFullGismuShape reports whether piece has one of the two canonical
// five-letter gismu shapes, CVCCV or CCVCV.
func isFullGismuShape(piece string) bool {
	if len(piece) != 5 {
		return false
	}
	c, v := isConsonantByte, isVowelByte
	cvccv := c(piece[0]) && v(piece[1]) && c(piece[2]) && c(piece[3]) && v(piece[4])
	ccvcv := c(piece[0]) && c(piece[1]) && v(piece[2]) && c(piece[3]) && v(piece[4])
	return cvccv || ccvcv
}
