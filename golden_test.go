package vlazba

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase is one fixed rafsi-to-lujvo normalization case, checked
// against Normalize and, by round trip, against Jvokaha.
type goldenCase struct {
	Name  string   `json:"name"`
	Rafsi []string `json:"rafsi"`
	Want  string   `json:"want"`
}

const lujvoGoldenPath = "testdata/golden/lujvo.json"

func TestGoldenNormalize(t *testing.T) {
	if *updateGolden {
		updateLujvoGolden(t)
		return
	}

	data, err := os.ReadFile(lujvoGoldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("lujvo.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Normalize(tc.Rafsi)
			if got != tc.Want {
				t.Errorf("Normalize(%v) = %q, want %q", tc.Rafsi, got, tc.Want)
			}

			pieces, err := Jvokaha(got)
			if err != nil {
				t.Errorf("Jvokaha(%q) returned error: %v", got, err)
				return
			}
			if roundTrip := Normalize(pieces); roundTrip != got {
				t.Errorf("Normalize(Jvokaha(%q)) = %q, want %q", got, roundTrip, got)
			}
		})
	}
}

func updateLujvoGolden(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(lujvoGoldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		cases[i].Want = Normalize(cases[i].Rafsi)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(lujvoGoldenPath, out, 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff testdata/golden/lujvo.json")
}
