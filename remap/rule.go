package remap

import "github.com/katalvlaran/rangemap/interval"

// NewRule builds the rule for the triple (dst, src, length):
// Source = [src, src+length), Offset = dst - src.
// ok is false when length <= 0; such triples carry no rule.
// Bounds are not checked for overflow; see CheckTriple.
func NewRule(dst, src, length int64) (r Rule, ok bool) {
	if length <= 0 {
		return Rule{}, false
	}
	return Rule{
		Source: interval.FromLength(src, length),
		Offset: dst - src,
	}, true
}

// Translate returns v + Offset when v lies in r.Source.
func (r Rule) Translate(v int64) (int64, bool) {
	if !r.Source.Contains(v) {
		return 0, false
	}
	return v + r.Offset, true
}

// Destination returns the image of r.Source.
func (r Rule) Destination() interval.Interval {
	return r.Source.Shift(r.Offset)
}
