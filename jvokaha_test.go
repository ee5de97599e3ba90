package vlazba

import "testing"

func TestJvokahaRoundTripsNormalizeOutput(t *testing.T) {
	lujvo := Normalize([]string{"kla", "gau"})
	pieces, err := Jvokaha(lujvo)
	if err != nil {
		t.Fatalf("Jvokaha(%q) returned error: %v", lujvo, err)
	}
	if got := Normalize(pieces); got != lujvo {
		t.Errorf("Normalize(Jvokaha(%q)) = %q, want %q", lujvo, got, lujvo)
	}
}

func TestJvokahaRoundTripsHyphenatedOutput(t *testing.T) {
	lujvo := Normalize([]string{"klam", "zdani"})
	pieces, err := Jvokaha(lujvo)
	if err != nil {
		t.Fatalf("Jvokaha(%q) returned error: %v", lujvo, err)
	}
	if got := Normalize(pieces); got != lujvo {
		t.Errorf("Normalize(Jvokaha(%q)) = %q, want %q", lujvo, got, lujvo)
	}
}

func TestJvokahaRejectsUnsegmentable(t *testing.T) {
	if _, err := Jvokaha("qq"); err == nil {
		t.Error(`Jvokaha("qq") returned nil error, want non-nil`)
	}
}

func TestIsFullGismuShape(t *testing.T) {
	if !isFullGismuShape("klama") {
		t.Error(`isFullGismuShape("klama") = false, want true`)
	}
	if !isFullGismuShape("zdani") {
		t.Error(`isFullGismuShape("zdani") = false, want true`)
	}
	if isFullGismuShape("klam") {
		t.Error(`isFullGismuShape("klam") = true, want false`)
	}
}
