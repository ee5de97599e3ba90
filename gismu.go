package vlazba

import (
	"strings"
	"sync"
)

// GismuGenerator enumerates candidate gismu of one or more CV-shapes over
// a chosen consonant and vowel alphabet, filtered by the phonotactic
// predicates of spec.md §4.B (component F).
type GismuGenerator struct {
	consonants []string
	vowels     []string
	shapes     []string
}

// NewGismuGenerator constructs a generator for the given shape strings
// (e.g. "ccvcv", "cvccv") over the given consonant and vowel alphabets.
// Each alphabet entry must be a single-letter string.
func NewGismuGenerator(consonants, vowels, shapes []string) *GismuGenerator {
	return &GismuGenerator{consonants: consonants, vowels: vowels, shapes: shapes}
}

// Generate returns every candidate string, across all configured shapes,
// that passes every phonotactic predicate for its shape. Candidates are
// grouped by shape in the order the shapes were configured. Within a shape
// of fewer than 4096 letter combinations they come back in mixed-radix
// index order; a larger shape is enumerated in parallel chunks that are
// appended as they finish, so its order is unspecified (spec.md §5).
func (g *GismuGenerator) Generate() []string {
	perShape := make([][]string, len(g.shapes))

	var wg sync.WaitGroup
	for i, shape := range g.shapes {
		wg.Add(1)
		go func(i int, shape string) {
			defer wg.Done()
			perShape[i] = g.shapeCandidates(shape)
		}(i, shape)
	}
	wg.Wait()

	var all []string
	for _, s := range perShape {
		all = append(all, s...)
	}
	return all
}

// shapeCandidates enumerates the candidates for a single shape string.
func (g *GismuGenerator) shapeCandidates(shape string) []string {
	alphabets := g.lettersForShape(shape)
	preds := compileShapePredicates(shape)

	total := 1
	for _, a := range alphabets {
		total *= len(a)
	}
	if total == 0 {
		return nil
	}

	const minParallelWork = 4096
	if total < minParallelWork {
		return enumerateRange(alphabets, preds, 0, total)
	}

	workers := 8
	chunk := (total + workers - 1) / workers

	resultsCh := make(chan []string, workers)
	var wg sync.WaitGroup
	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			resultsCh <- enumerateRange(alphabets, preds, start, end)
		}(start, end)
	}
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var all []string
	for part := range resultsCh {
		all = append(all, part...)
	}
	return all
}

// lettersForShape returns, for each letter of shape ('c' or 'v'), the
// alphabet (consonants or vowels) it ranges over.
func (g *GismuGenerator) lettersForShape(shape string) [][]string {
	alphabets := make([][]string, 0, len(shape))
	for i := 0; i < len(shape); i++ {
		switch shape[i] {
		case 'c', 'C':
			alphabets = append(alphabets, g.consonants)
		case 'v', 'V':
			alphabets = append(alphabets, g.vowels)
		}
	}
	return alphabets
}

// enumerateRange builds every candidate whose mixed-radix index lies in
// [start, end), treating the choice tuple as a mixed-radix integer (index
// 0 is the leftmost letter), and keeps those passing every predicate.
func enumerateRange(alphabets [][]string, preds []shapePredicate, start, end int) []string {
	var out []string
	digits := make([]int, len(alphabets))
	idx := unrank(alphabets, start)
	copy(digits, idx)

	var b strings.Builder
	for n := start; n < end; n++ {
		b.Reset()
		for i, a := range alphabets {
			b.WriteString(a[digits[i]])
		}
		x := b.String()
		if evalShapePredicates(preds, x) {
			out = append(out, x)
		}
		incrementMixedRadix(alphabets, digits)
	}
	return out
}

// unrank converts a flat mixed-radix index into its digit tuple.
func unrank(alphabets [][]string, n int) []int {
	digits := make([]int, len(alphabets))
	for i := len(alphabets) - 1; i >= 0; i-- {
		radix := len(alphabets[i])
		digits[i] = n % radix
		n /= radix
	}
	return digits
}

// incrementMixedRadix advances digits to the next mixed-radix index,
// carrying from the rightmost (least-significant) position.
func incrementMixedRadix(alphabets [][]string, digits []int) {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < len(alphabets[i]) {
			return
		}
		digits[i] = 0
	}
}
