// SPDX-License-Identifier: MIT
// Package: rangemap/builder
//
// impl_stage.go - random interval and rule generation.

package builder

import (
	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// randomInterval draws a non-empty interval inside [lo, hi) of length ≤ maxLen.
func (c *builderConfig) randomInterval() interval.Interval {
	start := c.between(c.lo, c.hi)
	room := min(c.maxLen, c.hi-start)
	return interval.FromLength(start, 1+c.rng.Int63n(room))
}

// randomOffset draws an offset in [-(hi-lo), hi-lo).
func (c *builderConfig) randomOffset() int64 {
	w := c.hi - c.lo
	return c.between(-w, w)
}

// stage builds stage i with n rules; errors are unwrapped sentinels.
func (c *builderConfig) stage(i, n int) (remap.Stage, error) {
	if n < 0 {
		return remap.Stage{}, ErrBadSize
	}
	st := remap.Stage{
		Source:      c.labelFn(i),
		Destination: c.labelFn(i + 1),
		Rules:       make([]remap.Rule, 0, n),
	}
	if n == 0 {
		return st, nil
	}

	if c.overlap {
		for j := 0; j < n; j++ {
			st.Rules = append(st.Rules, remap.Rule{Source: c.randomInterval(), Offset: c.randomOffset()})
		}
		return st, nil
	}

	slot := (c.hi - c.lo) / int64(n)
	if slot < 1 {
		return remap.Stage{}, ErrSpanTooSmall
	}
	for j := 0; j < n; j++ {
		base := c.lo + int64(j)*slot
		start := c.between(base, base+slot)
		room := min(c.maxLen, base+slot-start)
		src := interval.FromLength(start, 1+c.rng.Int63n(room))
		st.Rules = append(st.Rules, remap.Rule{Source: src, Offset: c.randomOffset()})
	}
	c.rng.Shuffle(len(st.Rules), func(a, b int) {
		st.Rules[a], st.Rules[b] = st.Rules[b], st.Rules[a]
	})
	return st, nil
}
