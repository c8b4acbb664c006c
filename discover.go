package jsongrid

import "iter"

// Candidate is one array found in the document, with the scorer's verdict
// filled in during selection. Candidates are produced fresh per derivation and
// never cached.
type Candidate struct {
	Path       Path
	Arr        *Value
	Score      float64
	Reason     string
	StableKeys []string
	// Primitive is set when the scorer saw no objects in the sample; rows then
	// carry the single synthetic value column.
	Primitive bool
}

// Candidates lazily yields every array in the document in deterministic
// pre-order: a containing array is yielded before arrays nested inside its
// elements, object fields are visited in insertion order, array elements in
// index order. The consumer may stop early.
func Candidates(root *Value) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		walkArrays(root, Path{}, yield)
	}
}

func walkArrays(v *Value, at Path, yield func(Candidate) bool) bool {
	if v == nil {
		return true
	}
	switch v.Kind {
	case KindArray:
		// Copy the path; the walk mutates its own buffer as it descends.
		if !yield(Candidate{Path: append(Path{}, at...), Arr: v}) {
			return false
		}
		for i, el := range v.Arr {
			if !walkArrays(el, append(at, IndexSeg(i)), yield) {
				return false
			}
		}
	case KindObject:
		for _, f := range v.Obj {
			if !walkArrays(f.Value, append(at, FieldSeg(f.Key)), yield) {
				return false
			}
		}
	}
	return true
}
