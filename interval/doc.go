// Package interval implements arithmetic over half-open integer ranges
// and the working collection (Set) that the remap engine pushes through
// its stages.
//
// 🚀 What is an Interval?
//
//	An Interval is the span [Start, End) of int64 values: Start is included,
//	End is not. An interval with Start == End is empty and covers nothing.
//
//	  [3, 7)  covers 3, 4, 5, 6        Len() = 4
//	  [7, 7)  covers nothing           IsEmpty() = true
//
// ✨ Key operations:
//   - Overlaps  - strict on both bounds; [0,5) and [5,9) do NOT overlap
//   - Intersect - [max(a.Start,b.Start), min(a.End,b.End)), clamped to empty
//   - Split     - cut r by another interval into left / middle / right pieces
//     whose lengths always sum to r.Len() (the coverage law)
//   - Shift     - translate both bounds by a constant offset
//
// Set is a plain slice of non-empty intervals. Duplicates and overlaps are
// allowed; nothing in this package merges them implicitly. Coalesce builds a
// merged, sorted copy when a canonical view is needed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rangemap/interval"
//
//	seeds, err := interval.FromPairs([]int64{79, 14, 55, 13})
//	// seeds = [[79,93) [55,68)]
//	lo, err := seeds.Min() // 55
//
// Complexity:
//
//   - Interval methods: O(1)
//   - Set.TotalLen, Set.Min, NewSet: O(n)
//   - Set.Coalesce: O(n log n)
package interval
