// SPDX-License-Identifier: MIT
// Package: rangemap/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// seed == 0 selects defaultRNGSeed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithSpan sets the window [lo, hi) that generated intervals and rule
// sources are drawn from. Panics if hi <= lo.
func WithSpan(lo, hi int64) BuilderOption {
	if hi <= lo {
		panic("builder: WithSpan(hi<=lo)")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithMaxLen bounds the length of generated intervals. Panics if n <= 0.
func WithMaxLen(n int64) BuilderOption {
	if n <= 0 {
		panic("builder: WithMaxLen(n<=0)")
	}
	return func(c *builderConfig) {
		c.maxLen = n
	}
}

// WithOverlap lets Stage and Pipeline emit overlapping rule sources.
func WithOverlap(allow bool) BuilderOption {
	return func(c *builderConfig) {
		c.overlap = allow
	}
}

// WithLabelFn sets the category label scheme used for stage labels.
// Panics on nil.
func WithLabelFn(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}
