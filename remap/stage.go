package remap

import (
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
)

// CheckTriple validates one (destination, source, length) triple.
//
// Errors:
//   - ErrNegativeLength    - length < 0.
//   - interval.ErrOverflow - source or destination end, or the offset
//     destination-source, does not fit in an int64.
func CheckTriple(t [3]int64) error {
	dst, src, length := t[0], t[1], t[2]
	switch {
	case length < 0:
		return fmt.Errorf("%w: got %d", ErrNegativeLength, length)
	case !interval.EndFits(src, length):
		return fmt.Errorf("%w: source %d+%d", interval.ErrOverflow, src, length)
	case !interval.EndFits(dst, length):
		return fmt.Errorf("%w: destination %d+%d", interval.ErrOverflow, dst, length)
	case length > 0 && !interval.DiffFits(dst, src):
		return fmt.Errorf("%w: offset %d-%d", interval.ErrOverflow, dst, src)
	}
	return nil
}

// NewStage builds a Stage from (destination, source, length) triples in
// declaration order. Triples with length 0 are dropped.
//
// Errors (wrapped with the stage name and rule index):
//   - ErrNegativeLength    - some triple has length < 0.
//   - interval.ErrOverflow - some triple does not fit in int64 arithmetic.
func NewStage(source, destination string, triples [][3]int64) (Stage, error) {
	st := Stage{
		Source:      source,
		Destination: destination,
		Rules:       make([]Rule, 0, len(triples)),
	}
	for i, t := range triples {
		if err := CheckTriple(t); err != nil {
			return Stage{}, fmt.Errorf("%s-to-%s rule %d: %w", source, destination, i, err)
		}
		if r, ok := NewRule(t[0], t[1], t[2]); ok {
			st.Rules = append(st.Rules, r)
		}
	}
	return st, nil
}

// Name returns "source-to-destination", or "stage" when both labels are empty.
func (st Stage) Name() string {
	if st.Source == "" && st.Destination == "" {
		return "stage"
	}
	return st.Source + "-to-" + st.Destination
}

// TranslatePoint maps v through the first rule (in declaration order)
// whose source contains it. Values matched by no rule are returned as is.
//
// Complexity: O(R).
func (st Stage) TranslatePoint(v int64) int64 {
	for _, r := range st.Rules {
		if out, ok := r.Translate(v); ok {
			return out
		}
	}
	return v
}

// Apply maps every value covered by in through the stage and returns the
// resulting set. in is not modified.
//
// Algorithm:
//  1. unconverted = copy of in; converted = {}.
//  2. For each rule, in declaration order:
//     for each r in unconverted:
//     split r by rule.Source into left / mid / right;
//     on overlap: mid shifted by rule.Offset goes to converted,
//     non-empty left and right stay unconverted;
//     otherwise r stays unconverted untouched.
//  3. Result = converted ++ unconverted (leftovers map to themselves).
//
// Once converted, a piece is never offered to a later rule of the same
// stage, so with overlapping rule sources the earlier rule wins.
//
// Invariants:
//   - out.TotalLen() == in.TotalLen()
//   - out holds no empty interval (empty inputs are dropped up front)
//
// Complexity: O(R·K), K = number of pieces alive during the pass.
func (st Stage) Apply(in interval.Set) interval.Set {
	unconverted := interval.NewSet(in...)
	converted := make(interval.Set, 0, len(unconverted))

	for _, rule := range st.Rules {
		next := make(interval.Set, 0, len(unconverted))
		for _, r := range unconverted {
			left, mid, right, ok := r.Split(rule.Source)
			if !ok {
				next = append(next, r)
				continue
			}
			if !left.IsEmpty() {
				next = append(next, left)
			}
			converted = append(converted, mid.Shift(rule.Offset))
			if !right.IsEmpty() {
				next = append(next, right)
			}
		}
		unconverted = next
	}

	return append(converted, unconverted...)
}

// Overlaps returns every pair (i, j), i < j, of rule indices whose source
// intervals share a value. An empty result means the stage is order
// independent.
//
// Complexity: O(R²).
func (st Stage) Overlaps() [][2]int {
	var pairs [][2]int
	for i := 0; i < len(st.Rules); i++ {
		for j := i + 1; j < len(st.Rules); j++ {
			if st.Rules[i].Source.Overlaps(st.Rules[j].Source) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
