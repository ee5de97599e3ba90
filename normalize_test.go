package vlazba

import "testing"

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil); got != "" {
		t.Errorf("Normalize(nil) = %q, want empty string", got)
	}
}

func TestNormalizeSingleRafsi(t *testing.T) {
	if got := Normalize([]string{"klama"}); got != "klama" {
		t.Errorf(`Normalize([]string{"klama"}) = %q, want "klama"`, got)
	}
}

func TestNormalizeConcatenatesWithoutHyphenWhenUnambiguous(t *testing.T) {
	// "kla" (4-letter? no, 3-letter CCV) followed by "gau" (CVV) — no
	// consonant cluster forms at the boundary, so no hyphen is needed.
	got := Normalize([]string{"kla", "gau"})
	if got != "klagau" {
		t.Errorf(`Normalize([]string{"kla", "gau"}) = %q, want "klagau"`, got)
	}
}

func TestNormalizeInsertsYForInadmissibleCluster(t *testing.T) {
	// "klam" (4-letter, consonant-final "m") followed by "zdani" (starts
	// with consonant "z"): "mz" is listed in forbiddenCC, so the m/z
	// boundary is never admissible and a y-hyphen must be inserted.
	got := Normalize([]string{"klam", "zdani"})
	want := "klamyzdani"
	if got != want {
		t.Errorf(`Normalize([]string{"klam", "zdani"}) = %q, want %q`, got, want)
	}
}

func TestNormalizeCVVFirstRafsiGetsRThenYHyphens(t *testing.T) {
	// "rai" (CVV) is the first rafsi overall in a 2-element list, so
	// shouldAddHyphen's "not CCV-shaped" arm fires against the leading
	// "klama" token, but the y-insertion guard fires first (mutating
	// result to lead with "y") and the r/n check that follows it then
	// only ever sees that leading "y" — see normalize.go's doc comment
	// on shouldAddHyphen for why "n" never fires in practice.
	got := Normalize([]string{"rai", "klama"})
	want := "rairyklama"
	if got != want {
		t.Errorf(`Normalize([]string{"rai", "klama"}) = %q, want %q`, got, want)
	}
}

func TestIsTosmabru(t *testing.T) {
	// spec.md §8 scenario 2's worked example: "ga'u" is CV'V-shaped, not
	// CVCCV, so isTosmabru exits false before ever reaching the walk.
	if isTosmabru("kal", []string{"ga'u"}) {
		t.Error(`isTosmabru("kal", []string{"ga'u"}) = true, want false`)
	}
	// "rakli" is CVCCV-shaped with a permissible-2 medial cluster "kl",
	// and "kat"+"rakli"'s boundary "t"+"r" is also permissible-2, so the
	// walk runs to completion and reports a tosmabru.
	if !isTosmabru("kat", []string{"rakli"}) {
		t.Error(`isTosmabru("kat", []string{"rakli"}) = false, want true`)
	}
}

func TestShapeHelpers(t *testing.T) {
	if !isCVVShape("rai") {
		t.Error(`isCVVShape("rai") = false, want true`)
	}
	if !isCVAposVShape("ma'a") {
		t.Error(`isCVAposVShape("ma'a") = false, want true`)
	}
	if !isCVCShape("tan") {
		t.Error(`isCVCShape("tan") = false, want true`)
	}
	if !isCCVShape("mri") {
		t.Error(`isCCVShape("mri") = false, want true`)
	}
	if !is4Letter("klam") {
		t.Error(`is4Letter("klam") = false, want true`)
	}
	if is4Letter("ma'a") {
		t.Error(`is4Letter("ma'a") = true, want false`)
	}
}
