// Package remap defines the Rule, Stage and Pipeline value types and the
// sentinel errors of the remapping engine.
package remap

import (
	"errors"

	"github.com/katalvlaran/rangemap/interval"
)

// Sentinel errors for remapping.
var (
	// ErrEmptyResult is returned by MinimumReachable when the final set
	// covers no values. Only degenerate (all-empty) input reaches it.
	ErrEmptyResult = errors.New("remap: pipeline produced an empty set")

	// ErrNegativeLength indicates a rule triple with length < 0.
	ErrNegativeLength = errors.New("remap: rule length must be non-negative")

	// ErrOverlappingRules is returned by Stage.Index when two rule sources
	// of the stage overlap.
	ErrOverlappingRules = errors.New("remap: stage has overlapping rule sources")
)

// Rule maps every value v in Source to v + Offset.
type Rule struct {
	Source interval.Interval // values this rule claims
	Offset int64             // destinationStart - sourceStart
}

// Stage is one translation layer. Source and Destination are descriptive
// labels ("seed", "soil", ...) and never influence the computation.
// Rules are applied in declaration order.
type Stage struct {
	Source      string
	Destination string
	Rules       []Rule
}

// Pipeline is an ordered chain of stages.
type Pipeline []Stage

// Option configures RemapRanges and MinimumReachable.
type Option func(*Options)

// Options holds observation hooks for a pipeline run.
type Options struct {
	// OnStage is called after stage i has produced out. out must be
	// treated as read-only.
	OnStage func(i int, st Stage, out interval.Set)
}

// DefaultOptions returns Options with a no-op OnStage hook.
func DefaultOptions() Options {
	return Options{
		OnStage: func(int, Stage, interval.Set) {},
	}
}

// WithOnStage registers a hook invoked after every stage. nil is ignored.
func WithOnStage(fn func(i int, st Stage, out interval.Set)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}
