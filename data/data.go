// Package data embeds the static lookup tables spec.md §3 and §6 treat as
// external collaborators: the four selrafsi→rafsi maps (gismu/cmavo,
// standard and experimental) and the consonant-pair permissibility matrix.
// Each is parsed once, in init(), into a typed Go value; nothing in this
// package re-parses per call.
package data

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed gismu_rafsi.json gismu_rafsi_exp.json cmavo_rafsi.json cmavo_rafsi_exp.json permissibility.json
var files embed.FS

// RafsiMap maps a selrafsi key to its ordered list of rafsi forms.
type RafsiMap map[string][]string

// PermissibilityMap maps an ordered consonant pair (c1, c2) to its
// permissibility value in {0, 1, 2}. A missing c1 row, or a missing c2
// within a present row, means 0 (inadmissible).
type PermissibilityMap map[byte]map[byte]int

var (
	gismuRafsi     RafsiMap
	gismuRafsiExp  RafsiMap
	cmavoRafsi     RafsiMap
	cmavoRafsiExp  RafsiMap
	permissibility PermissibilityMap
)

func init() {
	gismuRafsi = mustLoadRafsi("gismu_rafsi.json")
	gismuRafsiExp = mustLoadRafsi("gismu_rafsi_exp.json")
	cmavoRafsi = mustLoadRafsi("cmavo_rafsi.json")
	cmavoRafsiExp = mustLoadRafsi("cmavo_rafsi_exp.json")
	permissibility = mustLoadPermissibility("permissibility.json")
}

func mustLoadRafsi(name string) RafsiMap {
	raw, err := files.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("data: reading embedded %s: %v", name, err))
	}
	var m RafsiMap
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(fmt.Sprintf("data: parsing embedded %s: %v", name, err))
	}
	return m
}

func mustLoadPermissibility(name string) PermissibilityMap {
	raw, err := files.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("data: reading embedded %s: %v", name, err))
	}
	var asStrings map[string]map[string]int
	if err := json.Unmarshal(raw, &asStrings); err != nil {
		panic(fmt.Sprintf("data: parsing embedded %s: %v", name, err))
	}
	m := make(PermissibilityMap, len(asStrings))
	for c1, row := range asStrings {
		r := make(map[byte]int, len(row))
		for c2, v := range row {
			r[c2[0]] = v
		}
		m[c1[0]] = r
	}
	return m
}

// GismuRafsi returns the standard gismu→rafsi lookup table.
func GismuRafsi() RafsiMap { return gismuRafsi }

// GismuRafsiExp returns the experimental gismu→rafsi lookup table.
func GismuRafsiExp() RafsiMap { return gismuRafsiExp }

// CmavoRafsi returns the standard cmavo→rafsi lookup table.
func CmavoRafsi() RafsiMap { return cmavoRafsi }

// CmavoRafsiExp returns the experimental cmavo→rafsi lookup table.
func CmavoRafsiExp() RafsiMap { return cmavoRafsiExp }

// Permissible returns the permissibility value (0, 1 or 2) of the ordered
// consonant pair (c1, c2). Missing entries default to 0.
func Permissible(c1, c2 byte) int {
	row, ok := permissibility[c1]
	if !ok {
		return 0
	}
	return row[c2]
}
