package vlazba

import "testing"

func TestCartesianProduct(t *testing.T) {
	got := cartesianProduct([][]string{{"a", "b"}, {"x", "y"}})
	want := [][]string{{"a", "x"}, {"a", "y"}, {"b", "x"}, {"b", "y"}}
	if len(got) != len(want) {
		t.Fatalf("cartesianProduct returned %d tuples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Errorf("cartesianProduct()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCartesianProductEmptyOptionYieldsNothing(t *testing.T) {
	got := cartesianProduct([][]string{{"a"}, nil})
	if got != nil {
		t.Errorf("cartesianProduct with an empty option slice = %v, want nil", got)
	}
}

func TestIsForbiddenCmevla(t *testing.T) {
	if !isForbiddenCmevla([]string{"xa", "laxa"}) {
		t.Error(`isForbiddenCmevla with a "la" boundary = false, want true`)
	}
	if isForbiddenCmevla([]string{"kla", "gau"}) {
		t.Error(`isForbiddenCmevla(["kla", "gau"]) = true, want false`)
	}
}

func TestJvozbaFindsExpectedLujvo(t *testing.T) {
	results := Jvozba([]string{"klama", "gasnu"}, false, false)
	if len(results) == 0 {
		t.Fatal("Jvozba returned no candidates")
	}

	found := false
	for _, r := range results {
		if r.Lujvo == "klagau" {
			found = true
		}
	}
	if !found {
		t.Errorf("Jvozba([]string{\"klama\", \"gasnu\"}, ...) = %v, expected \"klagau\" among the candidates", results)
	}
}

func TestJvozbaResultsAscendingByScore(t *testing.T) {
	results := Jvozba([]string{"klama", "gasnu"}, false, false)
	for i := 1; i < len(results); i++ {
		if results[i].Score < results[i-1].Score {
			t.Fatalf("Jvozba results not ascending by score at index %d: %v", i, results)
		}
	}
}

func TestJvozbaNoSelrafsi(t *testing.T) {
	if got := Jvozba(nil, false, false); got != nil {
		t.Errorf("Jvozba(nil, ...) = %v, want nil", got)
	}
}
