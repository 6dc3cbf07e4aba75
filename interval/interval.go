package interval

import (
	"fmt"
	"math"
)

// New returns [start, end). If end < start the result is clamped to the
// empty interval at start.
func New(start, end int64) Interval {
	if end < start {
		end = start
	}
	return Interval{Start: start, End: end}
}

// FromLength returns [start, start+length). A non-positive length yields
// the empty interval at start.
func FromLength(start, length int64) Interval {
	if length < 0 {
		length = 0
	}
	return Interval{Start: start, End: start + length}
}

// EndFits reports whether start+length is representable as an int64.
// Non-positive lengths always fit.
func EndFits(start, length int64) bool {
	return length <= 0 || start <= math.MaxInt64-length
}

// DiffFits reports whether a-b is representable as an int64.
func DiffFits(a, b int64) bool {
	if b > 0 {
		return a >= math.MinInt64+b
	}
	return a <= math.MaxInt64+b
}

// Len returns the number of values covered by r.
func (r Interval) Len() int64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty reports whether r covers no values.
func (r Interval) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains reports whether v lies in [Start, End).
func (r Interval) Contains(v int64) bool {
	return r.Start <= v && v < r.End
}

// Overlaps reports whether r and o share at least one value.
// Both bounds are compared strictly, so abutting intervals
// ([0,5) and [5,9)) never overlap.
func (r Interval) Overlaps(o Interval) bool {
	return r.Start < o.End && o.Start < r.End
}

// Intersect returns the values common to r and o.
// When they do not overlap the result is empty (Len() == 0) and
// positioned at max(r.Start, o.Start).
func (r Interval) Intersect(o Interval) Interval {
	start := max(r.Start, o.Start)
	end := min(r.End, o.End)
	if end < start {
		end = start
	}
	return Interval{Start: start, End: end}
}

// Split cuts r by the interval by.
//
// When r and by overlap, ok is true and:
//
//	left  = [r.Start, mid.Start)   values of r before the overlap (may be empty)
//	mid   = r ∩ by                 never empty
//	right = [mid.End, r.End)       values of r after the overlap (may be empty)
//
// and left.Len()+mid.Len()+right.Len() == r.Len().
//
// When they do not overlap, ok is false and all three pieces are zero;
// the caller keeps r unchanged.
//
// Complexity: O(1).
func (r Interval) Split(by Interval) (left, mid, right Interval, ok bool) {
	if !r.Overlaps(by) {
		return Interval{}, Interval{}, Interval{}, false
	}
	mid = r.Intersect(by)
	left = Interval{Start: r.Start, End: mid.Start}
	right = Interval{Start: mid.End, End: r.End}
	return left, mid, right, true
}

// Shift returns r translated by d.
func (r Interval) Shift(d int64) Interval {
	return Interval{Start: r.Start + d, End: r.End + d}
}

// String renders r as "[start,end)".
func (r Interval) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
