// Package rangemap pushes sets of integer intervals through chains of
// piecewise-linear translation tables and finds the lowest value that
// comes out the other end.
//
// 🚀 What is rangemap?
//
//	A small, deterministic, dependency-light engine built from:
//		• Interval arithmetic: half-open [start, end) ranges, split & shift
//		• Stages: ordered rules "values in [src, src+len) move by dst-src"
//		• Pipelines: stages applied left to right over a whole interval set
//		• Point mode: the same chain applied to single values
//		• Almanac parser and CLI for the plain-text seed/map format
//
// ✨ Why ranges and not values?
//
//   - A seed range of a billion values is one Interval, not a billion lookups.
//   - Each rule splits an interval into at most three pieces, so the work is
//     bounded by stages × rules × intervals, independent of range width.
//   - Total covered length is conserved through every stage; nothing is lost
//     or duplicated.
//
// Packages:
//
//	interval/     - Interval, Set, Split/Intersect/Shift, Coalesce
//	remap/        - Rule, Stage, Pipeline, RemapRanges, RemapPoint, MinimumReachable
//	almanac/      - text parser producing seeds and a remap.Pipeline
//	builder/      - seeded random fixtures for tests and benchmarks
//	cmd/almanac/  - command-line front-end (points | ranges | check)
//
// Quick ASCII example:
//
//	seeds  [79 ────────── 93)
//	rule   [50 ──────────────────────── 98)  +2
//	out      [81 ────────── 95)
//
//	go get github.com/katalvlaran/rangemap
package rangemap
