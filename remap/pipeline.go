package remap

import (
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
)

// RemapRanges folds Stage.Apply over p from left to right, starting at set,
// and returns the set after the last stage. An empty pipeline returns the
// non-empty intervals of set.
//
// set is never modified; every stage receives the previous stage's fresh
// output.
//
// Complexity: Σ Apply over all stages.
func RemapRanges(set interval.Set, p Pipeline, opts ...Option) interval.Set {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cur := interval.NewSet(set...)
	for i, st := range p {
		cur = st.Apply(cur)
		o.OnStage(i, st, cur)
	}
	return cur
}

// RemapPoint folds Stage.TranslatePoint over p for a single value.
//
// Complexity: O(Σ R).
func RemapPoint(v int64, p Pipeline) int64 {
	for _, st := range p {
		v = st.TranslatePoint(v)
	}
	return v
}

// MinimumReachable returns the smallest value of RemapRanges(set, p).
//
// Errors:
//   - ErrEmptyResult - the final set covers no values (set was empty or
//     held only empty intervals).
func MinimumReachable(set interval.Set, p Pipeline, opts ...Option) (int64, error) {
	out := RemapRanges(set, p, opts...)
	lo, err := out.Min()
	if err != nil {
		return 0, fmt.Errorf("%w: %d input intervals through %d stages", ErrEmptyResult, len(set), len(p))
	}
	return lo, nil
}

// MinimumPoint returns the smallest RemapPoint over values.
//
// Errors:
//   - ErrEmptyResult - values is empty.
func MinimumPoint(values []int64, p Pipeline) (int64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no input values", ErrEmptyResult)
	}
	lk := NewLookup(p)
	lo := lk.Remap(values[0])
	for _, v := range values[1:] {
		lo = min(lo, lk.Remap(v))
	}
	return lo, nil
}
