package almanac

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// Sentinel errors for almanac parsing and validation.
var (
	// ErrParse matches every malformed-input error of this package.
	ErrParse = errors.New("almanac: malformed input")

	// ErrBrokenChain indicates stage i's destination label differs from
	// stage i+1's source label.
	ErrBrokenChain = errors.New("almanac: stage labels do not chain")
)

// ParseError locates a malformed line.
type ParseError struct {
	Line int    // 1-based line number; 0 when not tied to a line
	Msg  string // what was wrong
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("almanac: %s", e.Msg)
	}
	return fmt.Sprintf("almanac: line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Almanac is a parsed input: the raw seed numbers and the stage chain.
type Almanac struct {
	Seeds  []int64
	Stages remap.Pipeline
}

// SeedRanges reads Seeds as (start, length) pairs.
//
// Errors:
//   - ErrParse wrapping interval.ErrOddPairs, interval.ErrNegativeLength or
//     interval.ErrOverflow.
func (a *Almanac) SeedRanges() (interval.Set, error) {
	s, err := interval.FromPairs(a.Seeds)
	if err != nil {
		return nil, fmt.Errorf("%w: seeds: %w", ErrParse, err)
	}
	return s, nil
}

// CheckChain verifies that consecutive stages share their category label.
func (a *Almanac) CheckChain() error {
	for i := 1; i < len(a.Stages); i++ {
		prev, cur := a.Stages[i-1], a.Stages[i]
		if prev.Destination != cur.Source {
			return fmt.Errorf("%w: stage %d ends at %q but stage %d starts at %q",
				ErrBrokenChain, i-1, prev.Destination, i, cur.Source)
		}
	}
	return nil
}
