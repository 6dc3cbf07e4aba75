package remap_test

import (
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleStage_Apply
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One stage with two rules:
//	  52 50 48  → [50,98) shifted by +2
//	  50 98 2   → [98,100) shifted by -48
//	Input [45,64): [45,50) matches nothing, [50,64) moves to [52,66).
func ExampleStage_Apply() {
	st, err := remap.NewStage("seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	out := st.Apply(interval.NewSet(interval.New(45, 64)))
	fmt.Println(out, out.TotalLen())
	// Output:
	// {[52,66) [45,50)} 19
}

// ExampleMinimumReachable feeds seed pairs through a two-stage pipeline.
func ExampleMinimumReachable() {
	soil, _ := remap.NewStage("seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}})
	fert, _ := remap.NewStage("soil", "fertilizer", [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}})
	seeds, _ := interval.FromPairs([]int64{79, 14, 55, 13})

	lo, err := remap.MinimumReachable(seeds, remap.Pipeline{soil, fert})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(lo, remap.RemapPoint(79, remap.Pipeline{soil, fert}))
	// Output:
	// 57 81
}
