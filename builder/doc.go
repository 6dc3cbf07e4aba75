// SPDX-License-Identifier: MIT
// Package: rangemap/builder
//
// Package builder produces deterministic random fixtures for the remap
// engine: interval sets, stages and whole pipelines. It is used by the
// property tests and benchmarks of interval and remap, and is handy for
// fuzzing downstream code.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithSeed / WithRand: explicit, reproducible randomness.
//     – WithSpan:        the value window [lo, hi) fixtures are drawn from.
//     – WithMaxLen:      upper bound on generated interval lengths.
//     – WithOverlap:     allow overlapping rule sources inside one stage.
//     – WithLabelFn:     category label scheme for stage Source/Destination.
//   - Constructors:
//     – Set(n, ...):         n random non-empty intervals.
//     – Stage(rules, ...):   one stage, disjoint sources unless WithOverlap.
//     – Pipeline(stages, rules, ...): a labelled chain of stages.
//   - Label schemes (LabelFn): DefaultLabelFn ("0","1",…), AlmanacLabelFn
//     ("seed","soil",…,"location", then "c8","c9",…).
//
// Guarantees:
//
//   - Same options ⇒ same fixture, on every platform.
//   - Every produced interval is non-empty and lies inside the span.
//   - Without WithOverlap, rule sources of a stage are pairwise disjoint.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors wrapped with method context.
package builder
