package vlazba

import "fmt"

// languageWeights names the five donor-language weight presets from
// spec.md §3, selectable by tag through LanguageWeights; the CLI's gismu
// generation mode uses it to resolve its -weights flag.
var languageWeights = map[string][]float64{
	"1985": {0.36, 0.16, 0.21, 0.11, 0.09, 0.07},
	"1987": {0.36, 0.156, 0.208, 0.116, 0.087, 0.073},
	"1994": {0.348, 0.194, 0.163, 0.123, 0.088, 0.084},
	"1995": {0.347, 0.196, 0.16, 0.123, 0.089, 0.085},
	"1999": {0.334, 0.195, 0.187, 0.116, 0.081, 0.088},
}

// LanguageWeights returns the weight vector registered for the given
// preset tag ("1985", "1987", "1994", "1995" or "1999"), or an error if
// no preset is registered under that tag.
func LanguageWeights(tag string) ([]float64, error) {
	w, ok := languageWeights[tag]
	if !ok {
		return nil, fmt.Errorf("weights: no preset registered for %q", tag)
	}
	out := make([]float64, len(w))
	copy(out, w)
	return out, nil
}
