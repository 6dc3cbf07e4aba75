// SPDX-License-Identifier: MIT
// Package: rangemap/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - Functional options resolve into a builderConfig (no global state).
//   - Determinism: same arguments and options ⇒ identical fixtures.
//   - Safety: constructors never panic; they return wrapped sentinels.

package builder

import (
	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// Set returns n random non-empty intervals inside the span, each at most
// maxLen long. Intervals may overlap.
//
// Errors:
//   - ErrBadSize - n < 0.
//
// Complexity: O(n).
func Set(n int, opts ...BuilderOption) (interval.Set, error) {
	if n < 0 {
		return nil, builderErrorf(MethodSet, ErrBadSize, "n must be ≥ 0, got %d", n)
	}
	cfg := newBuilderConfig(opts...)

	out := make(interval.Set, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, cfg.randomInterval())
	}
	return out, nil
}

// Stage returns a stage with the given number of rules labelled
// label(0) → label(1).
//
// Without WithOverlap the span is cut into `rules` equal slots and one
// source is drawn inside each slot, so sources are pairwise disjoint; the
// rules are then shuffled so declaration order carries no position hint.
// With WithOverlap sources are drawn independently.
//
// Offsets are uniform in [-(hi-lo), hi-lo).
//
// Errors:
//   - ErrBadSize      - rules < 0.
//   - ErrSpanTooSmall - disjoint mode and the span is narrower than rules.
//
// Complexity: O(rules).
func Stage(rules int, opts ...BuilderOption) (remap.Stage, error) {
	cfg := newBuilderConfig(opts...)
	st, err := cfg.stage(0, rules)
	if err != nil {
		return remap.Stage{}, builderErrorf(MethodStage, err, "rules=%d", rules)
	}
	return st, nil
}

// Pipeline returns `stages` stages of `rules` rules each; stage i is
// labelled label(i) → label(i+1) so the chain is well formed.
//
// Errors: as Stage, plus ErrBadSize for stages < 0.
//
// Complexity: O(stages·rules).
func Pipeline(stages, rules int, opts ...BuilderOption) (remap.Pipeline, error) {
	if stages < 0 {
		return nil, builderErrorf(MethodPipeline, ErrBadSize, "stages must be ≥ 0, got %d", stages)
	}
	cfg := newBuilderConfig(opts...)

	p := make(remap.Pipeline, 0, stages)
	for i := 0; i < stages; i++ {
		st, err := cfg.stage(i, rules)
		if err != nil {
			return nil, builderErrorf(MethodPipeline, err, "stage %d", i)
		}
		p = append(p, st)
	}
	return p, nil
}
