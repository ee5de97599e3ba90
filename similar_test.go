package vlazba

import "testing"

func TestFindSimilarGismuStemMatch(t *testing.T) {
	inventory := []string{"klama", "barda"}
	got, ok := FindSimilarGismu("klaji", inventory, 0)
	if !ok || got != "klama" {
		t.Errorf("FindSimilarGismu(\"klaji\", ...) = (%q, %v), want (\"klama\", true)", got, ok)
	}
}

func TestFindSimilarGismuStructuralMatch(t *testing.T) {
	// "b" and "p" are listed as confusable in the similarities table, so a
	// candidate differing from an inventory gismu only at a b/p position
	// should collide even without a shared stem.
	inventory := []string{"barda"}
	got, ok := FindSimilarGismu("parda", inventory, 4)
	if !ok || got != "barda" {
		t.Errorf("FindSimilarGismu(\"parda\", ...) = (%q, %v), want (\"barda\", true)", got, ok)
	}
}

func TestFindSimilarGismuNoMatch(t *testing.T) {
	inventory := []string{"klama", "barda"}
	if _, ok := FindSimilarGismu("zunti", inventory, 0); ok {
		t.Error(`FindSimilarGismu("zunti", ...) reported a collision, want none`)
	}
}

func TestStringsMatchExcept(t *testing.T) {
	if !stringsMatchExcept("barda", "parda", 0, 5) {
		t.Error(`stringsMatchExcept("barda", "parda", 0, 5) = false, want true`)
	}
	if stringsMatchExcept("barda", "bardo", 0, 5) {
		t.Error(`stringsMatchExcept("barda", "bardo", 0, 5) = true, want false (the differing index is 4, not 0)`)
	}
	if !stringsMatchExcept("barda", "bardo", 4, 5) {
		t.Error(`stringsMatchExcept("barda", "bardo", 4, 5) = false, want true`)
	}
}
