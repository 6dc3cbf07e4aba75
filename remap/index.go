package remap

import (
	"fmt"

	"github.com/google/btree"
)

// indexDegree is the B-tree fan-out used by Index.
const indexDegree = 16

// Index answers TranslatePoint queries for a stage with disjoint rule
// sources in O(log R) instead of O(R).
//
// Rules are kept ordered by Source.Start; the only rule that can contain v
// is the one with the greatest Start <= v.
type Index struct {
	stage Stage
	tree  *btree.BTreeG[Rule]
}

// Index builds a point-lookup index over st.
//
// Errors:
//   - ErrOverlappingRules - two rule sources overlap; lookups would then
//     depend on declaration order, which the tree cannot preserve.
func (st Stage) Index() (*Index, error) {
	if pairs := st.Overlaps(); len(pairs) > 0 {
		return nil, fmt.Errorf("%w: %s rules %d and %d",
			ErrOverlappingRules, st.Name(), pairs[0][0], pairs[0][1])
	}
	tree := btree.NewG[Rule](indexDegree, func(a, b Rule) bool {
		return a.Source.Start < b.Source.Start
	})
	for _, r := range st.Rules {
		// Empty sources match nothing and would collide on Start.
		if r.Source.IsEmpty() {
			continue
		}
		tree.ReplaceOrInsert(r)
	}
	return &Index{stage: st, tree: tree}, nil
}

// Stage returns the stage the index was built from.
func (ix *Index) Stage() Stage {
	return ix.stage
}

// Len returns the number of indexed (non-empty) rules.
func (ix *Index) Len() int {
	return ix.tree.Len()
}

// TranslatePoint maps v like Stage.TranslatePoint.
func (ix *Index) TranslatePoint(v int64) int64 {
	out := v
	pivot := Rule{}
	pivot.Source.Start = v
	ix.tree.DescendLessOrEqual(pivot, func(r Rule) bool {
		if t, ok := r.Translate(v); ok {
			out = t
		}
		return false
	})
	return out
}

// Lookup is a compiled pipeline for repeated point queries. Stages with
// disjoint rules use an Index; the others fall back to a linear scan.
type Lookup struct {
	steps []func(int64) int64
}

// NewLookup compiles p for RemapPoint-style queries.
func NewLookup(p Pipeline) *Lookup {
	lk := &Lookup{steps: make([]func(int64) int64, len(p))}
	for i, st := range p {
		if ix, err := st.Index(); err == nil {
			lk.steps[i] = ix.TranslatePoint
			continue
		}
		lk.steps[i] = st.TranslatePoint
	}
	return lk
}

// Remap folds v through every compiled stage.
func (lk *Lookup) Remap(v int64) int64 {
	for _, step := range lk.steps {
		v = step(v)
	}
	return v
}
