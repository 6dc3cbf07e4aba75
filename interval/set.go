package interval

import (
	"fmt"
	"slices"
	"strings"
)

// NewSet returns a Set holding the non-empty intervals of ivs, in order.
func NewSet(ivs ...Interval) Set {
	out := make(Set, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}
	return out
}

// FromPairs converts a flat list of (start, length) pairs into a Set.
//
//	[79 14 55 13] → [[79,93) [55,68)]
//
// Pairs with length 0 are dropped.
//
// Errors:
//   - ErrOddPairs       - len(pairs) is odd.
//   - ErrNegativeLength - some length < 0.
//   - ErrOverflow       - start+length exceeds math.MaxInt64.
func FromPairs(pairs []int64) (Set, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddPairs, len(pairs))
	}
	out := make(Set, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		start, length := pairs[i], pairs[i+1]
		if length < 0 {
			return nil, fmt.Errorf("%w: pair %d has length %d", ErrNegativeLength, i/2, length)
		}
		if length == 0 {
			continue
		}
		if !EndFits(start, length) {
			return nil, fmt.Errorf("%w: pair %d [%d,+%d)", ErrOverflow, i/2, start, length)
		}
		out = append(out, FromLength(start, length))
	}
	return out, nil
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// TotalLen returns the sum of the lengths of all intervals in s.
// Overlapping intervals are counted once per occurrence.
func (s Set) TotalLen() int64 {
	var total int64
	for _, iv := range s {
		total += iv.Len()
	}
	return total
}

// Min returns the smallest Start across the non-empty intervals of s.
// Returns ErrEmptySet if s covers no values.
func (s Set) Min() (int64, error) {
	found := false
	var lo int64
	for _, iv := range s {
		if iv.IsEmpty() {
			continue
		}
		if !found || iv.Start < lo {
			lo = iv.Start
			found = true
		}
	}
	if !found {
		return 0, ErrEmptySet
	}
	return lo, nil
}

// Contains reports whether some interval of s covers v.
func (s Set) Contains(v int64) bool {
	for _, iv := range s {
		if iv.Contains(v) {
			return true
		}
	}
	return false
}

// Coalesce returns a new Set sorted by Start in which overlapping and
// abutting intervals are merged. s itself is not modified.
//
// Complexity: O(n log n).
func (s Set) Coalesce() Set {
	sorted := NewSet(s...)
	slices.SortFunc(sorted, func(a, b Interval) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	out := make(Set, 0, len(sorted))
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}
		out = append(out, iv)
	}
	return out
}

// String renders s as a space separated list of intervals.
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, iv := range s {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
