package vlazba

import (
	"fmt"

	"github.com/lojban-tools/vlazba/data"
)

// isCmavo reports whether selrafsi is registered in the cmavo rafsi table
// (or the experimental table, when expRafsi is set) with a non-empty
// rafsi list — the dispatch test spec.md §4.J step 1 actually uses, not a
// length heuristic: a cmavo and a gismu selrafsi can be the same length,
// so only table membership tells them apart. Grounded on original_source's
// cmavo_rafsi_list (jvozba/tools.rs:43-57).
func isCmavo(selrafsi string, expRafsi bool) bool {
	if list, ok := data.CmavoRafsi()[selrafsi]; ok && len(list) > 0 {
		return true
	}
	if expRafsi {
		if list, ok := data.CmavoRafsiExp()[selrafsi]; ok && len(list) > 0 {
			return true
		}
	}
	return false
}

// cmavoRafsiCandidates returns the rafsi forms registered for the cmavo
// selrafsi: the standard table's list, or the experimental table's list
// when expRafsi is set and the standard table has none. Spec.md §4.J step
// 1 returns that registered list as-is — it does not also offer the
// cmavo's own spelling as a candidate.
func cmavoRafsiCandidates(selrafsi string, expRafsi bool) []string {
	if list, ok := data.CmavoRafsi()[selrafsi]; ok && len(list) > 0 {
		return list
	}
	if expRafsi {
		if list, ok := data.CmavoRafsiExp()[selrafsi]; ok && len(list) > 0 {
			return list
		}
	}
	return nil
}

// isGismu reports whether selrafsi is registered in the gismu rafsi
// table at all — the membership test GetCandid uses to decide between
// the gismu path and the fatal "no rafsi for word" path.
func isGismu(selrafsi string) bool {
	_, ok := data.GismuRafsi()[selrafsi]
	return ok
}

// gismuRafsiCandidates returns every rafsi form jvozba may substitute for
// the gismu selrafsi. isLast controls whether the full five-letter gismu
// itself is offered as a candidate (only the final selrafsi of a lujvo may
// keep its full gismu form, per spec.md §4.J). The "chopped" form (every
// letter but the last) is offered for every position except when it is
// the literal "brod" — reserved as a fu'ivla placeholder shape, not a
// lujvo rafsi. Grounded on original_source's gismu_rafsi_list and the
// gismu branch of get_candid (jvozba/tools.rs:28-40,61-76).
func gismuRafsiCandidates(selrafsi string, isLast, expRafsi bool) []string {
	var out []string
	out = append(out, data.GismuRafsi()[selrafsi]...)
	if expRafsi {
		out = append(out, data.GismuRafsiExp()[selrafsi]...)
	}

	if isLast {
		out = append(out, selrafsi)
	}

	chopped := selrafsi[:len(selrafsi)-1]
	if chopped != "brod" {
		out = append(out, chopped)
	}

	return out
}

// GetCandid returns, for each selrafsi in selrafsiList, its list of
// candidate rafsi substitutions (spec.md §4.J step 1): the cmavo table's
// registered list when selrafsi is a cmavo with a non-empty entry, else
// the gismu table's rafsi list plus chopped/full forms when selrafsi is a
// gismu, else a fatal error. Exported standalone (SPEC_FULL.md §12) so a
// caller can inspect the raw per-selrafsi candidate lists without running
// Jvozba's full cartesian product.
//
// A selrafsi absent from every rafsi table violates jvozba's precondition
// and has no legal rafsi substitution at all — spec.md §7 classifies this
// as Fatal ("no rafsi for word"), so GetCandid panics rather than
// returning a degenerate candidate list.
func GetCandid(selrafsiList []string, expRafsi bool) [][]string {
	out := make([][]string, len(selrafsiList))
	last := len(selrafsiList) - 1
	for i, s := range selrafsiList {
		switch {
		case isCmavo(s, expRafsi):
			out[i] = cmavoRafsiCandidates(s, expRafsi)
		case isGismu(s):
			out[i] = gismuRafsiCandidates(s, i == last, expRafsi)
		default:
			panic(fmt.Sprintf("vlazba: no rafsi for word %q", s))
		}
	}
	return out
}

// SearchSelrafsiFromRafsi searches every rafsi table (gismu and cmavo,
// standard and experimental, unless expRafsi is false) for the selrafsi
// that registers rafsi as one of its forms, or the gismu itself if rafsi is
// a bare five-letter gismu with no table entry. This is the supplemented
// inverse of GetCandid (SPEC_FULL.md §12), for callers that want to map a
// decomposed rafsi back to its selrafsi; Jvokaha itself does not call it.
func SearchSelrafsiFromRafsi(rafsi string, expRafsi bool) (string, bool) {
	tables := []data.RafsiMap{data.GismuRafsi(), data.CmavoRafsi()}
	if expRafsi {
		tables = append(tables, data.GismuRafsiExp(), data.CmavoRafsiExp())
	}

	for _, table := range tables {
		for selrafsi, forms := range table {
			for _, f := range forms {
				if f == rafsi {
					return selrafsi, true
				}
			}
		}
	}

	if len(rafsi) == 5 {
		if _, ok := data.GismuRafsi()[rafsi]; ok {
			return rafsi, true
		}
	}

	return "", false
}
