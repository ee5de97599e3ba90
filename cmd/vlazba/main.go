// Command vlazba is the command-line front end for the gismu synthesis and
// lujvo synthesis/analysis library in github.com/lojban-tools/vlazba. With
// no mode flag it generates and scores gismu candidates; -jvozba builds a
// lujvo from a selrafsi list, and -jvokaha decomposes a lujvo back into
// its rafsi.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lojban-tools/vlazba"
)

// presetTagPattern recognizes a bare four-digit weight-preset tag such as
// "1994"; anything else passed to -weights is either the "finprims" alias
// or a literal six-value CSV weight vector.
var presetTagPattern = regexp.MustCompile(`^[0-9]{4}$`)

func main() {
	jvozbaFlag := flag.String("jvozba", "", "comma-separated selrafsi list to synthesize a lujvo from")
	jvokahaFlag := flag.String("jvokaha", "", "lujvo to decompose into its rafsi sequence")
	donorsFlag := flag.String("donors", "", "comma-separated donor words to score gismu candidates against")
	shapesFlag := flag.String("shapes", "ccvcv,cvccv,cvcvv", "comma-separated CV-shapes to generate gismu candidates for")
	weightsFlag := flag.String("weights", "1994", "weight preset (1985,1987,1994,1995,1999,finprims) or 6 comma-separated floats")
	allLetters := flag.Bool("all-letters", false, "use the full consonant/vowel alphabet instead of restricting to donor-word letters")
	deduplicate := flag.String("deduplicate", "", "path to an existing gismu list to drop near-duplicate candidates against")
	forbidLaLaiDoi := flag.Bool("forbid-la-lai-doi", false, "drop lujvo whose rafsi boundary reads as la/lai/doi")
	expRafsi := flag.Bool("exp-rafsi", false, "also consider experimental rafsi when synthesizing lujvo")
	flag.Parse()

	switch {
	case *jvozbaFlag != "":
		runJvozba(*jvozbaFlag, *forbidLaLaiDoi, *expRafsi)
	case *jvokahaFlag != "":
		runJvokaha(*jvokahaFlag)
	default:
		runGismu(*donorsFlag, *shapesFlag, *weightsFlag, *allLetters, *deduplicate)
	}
}

func runJvozba(selrafsiCSV string, forbidLaLaiDoi, expRafsi bool) {
	selrafsiList := splitCSV(selrafsiCSV)
	if len(selrafsiList) == 0 {
		log.Fatal("vlazba: -jvozba requires at least one selrafsi")
	}

	results := vlazba.Jvozba(selrafsiList, forbidLaLaiDoi, expRafsi)
	if len(results) == 0 {
		log.Fatalf("vlazba: no lujvo could be synthesized from %v", selrafsiList)
	}

	const topN = 10
	for i, r := range results {
		if i >= topN {
			break
		}
		fmt.Printf("%s\t%d\n", r.Lujvo, r.Score)
	}
}

func runJvokaha(lujvo string) {
	pieces, err := vlazba.Jvokaha(lujvo)
	if err != nil {
		log.Fatalf("vlazba: %v", err)
	}
	fmt.Println(strings.Join(pieces, " "))
}

func runGismu(donorsCSV, shapesCSV, weightsArg string, allLetters bool, deduplicatePath string) {
	donors := splitCSV(donorsCSV)
	if len(donors) == 0 {
		log.Fatal("vlazba: -donors requires at least one donor word")
	}

	shapes := splitCSV(shapesCSV)
	weights, err := resolveWeights(weightsArg)
	if err != nil {
		log.Fatalf("vlazba: %v", err)
	}
	if len(weights) != len(donors) {
		log.Fatalf("vlazba: %d donor words but %d weights", len(donors), len(weights))
	}

	consonants, vowels := fullAlphabet()
	if !allLetters {
		consonants, vowels = lettersForWords(donors)
	}

	gen := vlazba.NewGismuGenerator(consonants, vowels, shapes)
	candidates := gen.Generate()

	if deduplicatePath != "" {
		inventory, err := readGismuList(deduplicatePath)
		if err != nil {
			log.Fatalf("vlazba: %v", err)
		}
		candidates = deduplicateCandidates(candidates, inventory)
	}

	scored := vlazba.ScoreAll(candidates, donors, weights)
	sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	const topN = 10
	for i, c := range scored {
		if i >= topN {
			break
		}
		fmt.Printf("%s\t%.4f\n", c.Candidate, c.Score)
	}
}

// resolveWeights turns the -weights argument into a weight vector: a bare
// four-digit tag or "finprims" selects a named preset (SPEC_FULL.md §12),
// anything else is parsed as a literal comma-separated float list.
func resolveWeights(arg string) ([]float64, error) {
	tag := arg
	if tag == "finprims" {
		tag = "1999"
	}
	if presetTagPattern.MatchString(tag) {
		return vlazba.LanguageWeights(tag)
	}

	parts := splitCSV(arg)
	weights := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing weight %q: %w", p, err)
		}
		weights[i] = v
	}
	return weights, nil
}

// fullAlphabet returns every consonant and vowel letter as single-letter
// strings, for unrestricted gismu generation.
func fullAlphabet() (consonants, vowels []string) {
	for i := 0; i < len(vlazba.C); i++ {
		consonants = append(consonants, vlazba.C[i:i+1])
	}
	for i := 0; i < len(vlazba.V); i++ {
		vowels = append(vowels, vlazba.V[i:i+1])
	}
	return consonants, vowels
}

// lettersForWords restricts the consonant and vowel alphabets to the
// letters actually appearing in words, so a generation run only produces
// candidates built from sounds the donor languages use.
func lettersForWords(words []string) (consonants, vowels []string) {
	seenC := map[byte]bool{}
	seenV := map[byte]bool{}
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			c := w[i]
			if strings.IndexByte(vlazba.C, c) >= 0 {
				seenC[c] = true
			} else if strings.IndexByte(vlazba.V, c) >= 0 {
				seenV[c] = true
			}
		}
	}

	for i := 0; i < len(vlazba.C); i++ {
		if c := vlazba.C[i]; seenC[c] {
			consonants = append(consonants, string(c))
		}
	}
	for i := 0; i < len(vlazba.V); i++ {
		if v := vlazba.V[i]; seenV[v] {
			vowels = append(vowels, string(v))
		}
	}
	return consonants, vowels
}

// readGismuList reads one gismu per line from path, skipping blank lines.
func readGismuList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading gismu list %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading gismu list %s: %w", path, err)
	}
	return out, nil
}

// deduplicateCandidates drops every candidate that collides with an
// existing gismu in inventory under vlazba.FindSimilarGismu.
func deduplicateCandidates(candidates, inventory []string) []string {
	out := candidates[:0:0]
	for _, c := range candidates {
		if _, collides := vlazba.FindSimilarGismu(c, inventory, 0); !collides {
			out = append(out, c)
		}
	}
	return out
}

// splitCSV splits a comma-separated flag value into trimmed, non-empty
// fields.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
