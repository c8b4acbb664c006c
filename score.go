package jsongrid

import (
	"fmt"
	"math"
)

// SyntheticValueKey is the single column name used for arrays of primitives,
// and for elements that degrade to one-field rows inside object-shaped arrays.
const SyntheticValueKey = "value"

// Scoring weights. Shape fidelity dominates, breadth of shared structure is
// secondary, sheer size is a minor tiebreaker.
const (
	weightObjectRatio = 70.0
	weightStableKeys  = 5.0
	weightLength      = 10.0
)

// ScoreArray scores one candidate array for tabularity and extracts its stable
// key set. An empty (or non-array) value scores 0 and is excluded from
// selection. The first min(len, SampleCap) elements are sampled; a field is
// stable when it occurs in at least ceil(StableKeyRatio x sampleSize) of the
// sampled objects.
func ScoreArray(arr *Value, opts ...Options) (score float64, reason string, stableKeys []string) {
	score, reason, stableKeys, _ = scoreArray(arr, normalizeOptions(opts))
	return score, reason, stableKeys
}

// scoreArray additionally reports whether the array was classified as
// primitive, so row normalization does not have to guess from the key list.
func scoreArray(arr *Value, opt Options) (score float64, reason string, stableKeys []string, primitive bool) {
	if arr == nil || arr.Kind != KindArray || len(arr.Arr) == 0 {
		return 0, "empty array", nil, false
	}
	length := len(arr.Arr)
	sample := length
	if sample > opt.SampleCap {
		sample = opt.SampleCap
	}

	objectCount := 0
	var keyOrder []string
	keyCounts := make(map[string]int)
	for _, el := range arr.Arr[:sample] {
		if el == nil || el.Kind != KindObject {
			continue
		}
		objectCount++
		for _, f := range el.Obj {
			if _, seen := keyCounts[f.Key]; !seen {
				keyOrder = append(keyOrder, f.Key)
			}
			keyCounts[f.Key]++
		}
	}

	sizeTerm := math.Log10(float64(length) + 1)
	if objectCount == 0 {
		score = 1 + sizeTerm
		reason = fmt.Sprintf("primitive array, %d items", length)
		return score, reason, []string{SyntheticValueKey}, true
	}

	need := int(math.Ceil(opt.StableKeyRatio * float64(sample)))
	var stable []string
	for _, k := range keyOrder {
		if keyCounts[k] >= need {
			stable = append(stable, k)
		}
	}
	if len(stable) == 0 {
		// Object-shaped arrays never end up with zero columns.
		stable = keyOrder
	}

	ratio := float64(objectCount) / float64(sample)
	score = ratio*weightObjectRatio + float64(len(stable))*weightStableKeys + sizeTerm*weightLength
	reason = fmt.Sprintf("%d/%d objects, %d keys, %d items", objectCount, sample, len(stable), length)
	return score, reason, stable, false
}
