// Package interval defines the half-open Interval, the Set collection
// and sentinel errors shared by the remapping packages.
package interval

import "errors"

// Sentinel errors for interval and set construction.
var (
	// ErrEmptySet is returned by Set.Min when the set holds no intervals.
	ErrEmptySet = errors.New("interval: set is empty")

	// ErrOddPairs indicates a (start, length) list with an odd element count.
	ErrOddPairs = errors.New("interval: pair list must have an even number of values")

	// ErrNegativeLength indicates a (start, length) pair with length < 0.
	ErrNegativeLength = errors.New("interval: negative length")

	// ErrOverflow indicates a bound or offset outside the int64 range.
	ErrOverflow = errors.New("interval: value overflows int64")
)

// Interval is the half-open range [Start, End).
//
// Invariant: Start <= End. Start == End is the empty interval; values with
// Start > End are never produced by this package.
type Interval struct {
	Start int64 // first value covered
	End   int64 // first value past the range
}

// Set is a working collection of intervals.
//
// Sets built through NewSet, FromPairs, Coalesce and the remap package hold
// only non-empty intervals. Duplicates and overlaps are permitted.
type Set []Interval
