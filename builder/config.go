// SPDX-License-Identifier: MIT
// Package: rangemap/builder
//
// config.go - internal configuration, deterministic defaults and RNG policy.
//
// Deterministic defaults:
//   • rng      = rngFromSeed(0)      (fixed stream unless seeded)
//   • span     = [0, 1000)
//   • maxLen   = 100
//   • overlap  = false               (disjoint rule sources)
//   • labelFn  = DefaultLabelFn      ("0","1","2",...)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng     *rand.Rand
	lo, hi  int64
	maxLen  int64
	overlap bool
	labelFn LabelFn
}

const (
	defaultLo     int64 = 0
	defaultHi     int64 = 1000
	defaultMaxLen int64 = 100

	// defaultRNGSeed is used when callers pass seed == 0 or no seed at all.
	defaultRNGSeed int64 = 1
)

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		lo:      defaultLo,
		hi:      defaultHi,
		maxLen:  defaultMaxLen,
		labelFn: DefaultLabelFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi). Requires hi > lo.
func (c *builderConfig) between(lo, hi int64) int64 {
	return lo + c.rng.Int63n(hi-lo)
}

// LabelFn names the i-th category of a pipeline (stage i maps label(i)
// to label(i+1)). Must be pure.
type LabelFn func(i int) string

// DefaultLabelFn returns the decimal string of i.
func DefaultLabelFn(i int) string {
	return strconv.Itoa(i)
}

// almanacLabels is the canonical category chain of the almanac format.
var almanacLabels = []string{
	"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location",
}

// AlmanacLabelFn returns the almanac category names for the first eight
// indices and "c<i>" afterwards.
func AlmanacLabelFn(i int) string {
	if i >= 0 && i < len(almanacLabels) {
		return almanacLabels[i]
	}
	return "c" + strconv.Itoa(i)
}
