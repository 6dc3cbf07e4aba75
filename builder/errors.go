// SPDX-License-Identifier: MIT
// Package: rangemap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with builderErrorf + %w.
//   • Constructors never panic; option constructors do (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative count (intervals, rules, stages).
var ErrBadSize = errors.New("builder: invalid size")

// ErrSpanTooSmall indicates the configured span cannot fit the requested
// number of disjoint rule sources.
var ErrSpanTooSmall = errors.New("builder: span too small")

// Method tokens used as error prefixes.
const (
	MethodSet      = "Set"
	MethodStage    = "Stage"
	MethodPipeline = "Pipeline"
)

// builderErrorf wraps err with method context: "<method>: <msg>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
