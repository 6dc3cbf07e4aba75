// Package remap pushes sets of integer intervals through an ordered chain
// of piecewise-linear translation tables and reports what comes out.
//
// 🚀 Model
//
//	Rule      - "every value in Source maps to value + Offset".
//	Stage     - an ordered list of Rules; values matched by no rule pass
//	            through unchanged (identity fallback).
//	Pipeline  - an ordered list of Stages applied left to right.
//
// A Rule is usually written as the triple (destination, source, length):
//
//	52 50 48   →   Source = [50, 98), Offset = +2
//
// ✨ Operations:
//   - Stage.Apply        - map a whole interval.Set through one stage
//   - Stage.TranslatePoint - map a single value through one stage
//   - RemapRanges        - fold Apply over a Pipeline
//   - RemapPoint         - fold TranslatePoint over a Pipeline
//   - MinimumReachable   - smallest value of RemapRanges' result
//
// Rule order:
//
//	Rules of a stage are expected to have pairwise disjoint sources. This is
//	NOT enforced. When sources overlap, a value is claimed by the first rule
//	(in declaration order) that covers it, for both Apply and TranslatePoint,
//	so swapping rule order changes the output. Stage.Overlaps reports such
//	pairs for diagnostics; Stage.Index refuses them.
//
// Guarantees:
//   - every Set returned by this package contains only non-empty intervals;
//   - Apply conserves total length: out.TotalLen() == in.TotalLen();
//   - inputs are never mutated; each stage returns a fresh Set.
//
// Complexity:
//
//   - Apply: O(R·K) where R = rules in the stage and K = intervals alive
//     during the pass (each rule can split one interval into at most three).
//   - RemapRanges: sum of Apply over all stages.
//
// ⚙️ Usage:
//
//	soil, _ := remap.NewStage("seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}})
//	seeds, _ := interval.FromPairs([]int64{79, 14, 55, 13})
//	lo, err := remap.MinimumReachable(seeds, remap.Pipeline{soil})
package remap
