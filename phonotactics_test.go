package vlazba

import "testing"

func TestPairAdmissibleInitial(t *testing.T) {
	tests := []struct {
		pair string
		want bool
	}{
		{"bl", true},
		{"tr", true},
		{"zv", true},
		{"lt", false},
		{"xx", false},
	}
	for _, tt := range tests {
		if got := pairAdmissibleInitial(tt.pair); got != tt.want {
			t.Errorf("pairAdmissibleInitial(%q) = %v, want %v", tt.pair, got, tt.want)
		}
	}
}

func TestPairAdmissibleMedial(t *testing.T) {
	tests := []struct {
		c1, c2 byte
		want   bool
	}{
		{'l', 'd', true},     // unrelated sonorant + voiced stop
		{'l', 'l', false},    // equal
		{'b', 't', false},    // voiced followed by unvoiced
		{'t', 'b', false},    // unvoiced followed by voiced
		{'c', 's', false},    // both sibilants
		{'c', 'x', false},    // forbiddenCC
		{'m', 'z', false},    // forbiddenCC
	}
	for _, tt := range tests {
		if got := pairAdmissibleMedial(tt.c1, tt.c2); got != tt.want {
			t.Errorf("pairAdmissibleMedial(%q, %q) = %v, want %v", tt.c1, tt.c2, got, tt.want)
		}
	}
}

func TestTripleAdmissible(t *testing.T) {
	if tripleAdmissible("ndj") {
		t.Error(`tripleAdmissible("ndj") = true, want false`)
	}
	if !tripleAdmissible("str") {
		t.Error(`tripleAdmissible("str") = false, want true`)
	}
}

func TestCompileAndEvalShapePredicates(t *testing.T) {
	tests := []struct {
		shape string
		word  string
		want  bool
	}{
		{"ccvcv", "blabi", true},
		{"ccvcv", "lbabi", false}, // "lb" not a valid initial pair
		{"cvccv", "barda", true},
		{"cvccv", "bacda", false}, // voiced/unvoiced mismatch medially (c then d: unvoiced,voiced)
	}
	for _, tt := range tests {
		preds := compileShapePredicates(tt.shape)
		if got := evalShapePredicates(preds, tt.word); got != tt.want {
			t.Errorf("evalShapePredicates(compileShapePredicates(%q), %q) = %v, want %v", tt.shape, tt.word, got, tt.want)
		}
	}
}
