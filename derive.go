package jsongrid

import (
	"sort"
	"strings"
)

// Result is a successful derivation: ordered rows, ordered typed columns, the
// structural path of the chosen array, and a human-readable note (the scorer's
// reason plus the chosen path).
type Result struct {
	Rows    []GridRow
	Columns []GridColumn
	Path    Path
	Note    string
}

// Derive runs the full pipeline over raw text. Outcomes are three-way
// distinguishable: (nil, *ParseError) when no parse strategy succeeded,
// (nil, nil) for blank input or a valid document with no qualifying array,
// and (*Result, nil) otherwise. The call is pure and holds no state, so
// independent derivations may run concurrently.
func Derive(text string, opts ...Options) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	opt := normalizeOptions(opts)
	root, err := ParseTolerant(text, opt)
	if err != nil {
		return nil, err
	}
	return DeriveValue(root, opt), nil
}

// DeriveValue derives a grid from an already parsed document. Total: returns
// nil when no candidate array qualifies.
func DeriveValue(root *Value, opts ...Options) *Result {
	opt := normalizeOptions(opts)
	best, ok := selectCandidate(root, opt)
	if !ok {
		return nil
	}
	rows := normalizeRows(best.Arr, best.StableKeys, best.Primitive)
	cols := inferColumns(rows)
	return &Result{
		Rows:    rows,
		Columns: cols,
		Path:    best.Path,
		Note:    best.Reason + " at " + best.Path.String(),
	}
}

// selectCandidate scores every discovered array, drops zero scores, and picks
// the best. The sort is stable so that ties go to the candidate discovered
// earlier in pre-order.
func selectCandidate(root *Value, opt Options) (Candidate, bool) {
	var scored []Candidate
	for c := range Candidates(root) {
		score, reason, stable, primitive := scoreArray(c.Arr, opt)
		if score <= 0 {
			continue
		}
		c.Score, c.Reason, c.StableKeys, c.Primitive = score, reason, stable, primitive
		scored = append(scored, c)
	}
	if len(scored) == 0 {
		return Candidate{}, false
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored[0], true
}
