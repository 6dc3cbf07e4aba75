package remap_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Rule
//----------------------------------------------------------------------------//

// TestNewRule verifies triple conversion and zero-length rejection.
func TestNewRule(t *testing.T) {
	r, ok := remap.NewRule(52, 50, 48)
	require.True(t, ok)
	assert.Equal(t, interval.New(50, 98), r.Source)
	assert.Equal(t, int64(2), r.Offset)
	assert.Equal(t, interval.New(52, 100), r.Destination())

	_, ok = remap.NewRule(1, 2, 0)
	assert.False(t, ok, "zero-length triple carries no rule")
}

// TestRule_Translate checks the half-open source bounds.
func TestRule_Translate(t *testing.T) {
	r, _ := remap.NewRule(52, 50, 48)

	v, ok := r.Translate(79)
	assert.True(t, ok)
	assert.Equal(t, int64(81), v)

	_, ok = r.Translate(98)
	assert.False(t, ok, "End is exclusive")
	_, ok = r.Translate(49)
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Stage construction
//----------------------------------------------------------------------------//

// TestNewStage drops zero lengths and rejects negative ones.
func TestNewStage(t *testing.T) {
	st, err := remap.NewStage("seed", "soil", [][3]int64{{50, 98, 2}, {0, 0, 0}, {52, 50, 48}})
	require.NoError(t, err)
	assert.Len(t, st.Rules, 2)
	assert.Equal(t, "seed-to-soil", st.Name())

	_, err = remap.NewStage("a", "b", [][3]int64{{1, 2, -1}})
	assert.ErrorIs(t, err, remap.ErrNegativeLength)

	overflow := map[string][3]int64{
		"SourceEnd":      {0, math.MaxInt64 - 1, 2},
		"DestinationEnd": {math.MaxInt64, 0, 1},
		"Offset":         {math.MaxInt64 - 10, -11, 1},
		"NegativeOffset": {math.MinInt64, 1, 1},
	}
	for name, tr := range overflow {
		_, err = remap.NewStage("a", "b", [][3]int64{{0, 0, 1}, tr})
		assert.ErrorIs(t, err, interval.ErrOverflow, name)
		assert.ErrorContains(t, err, "a-to-b rule 1", name)
	}

	st, err = remap.NewStage("a", "b", [][3]int64{{math.MaxInt64 - 5, 0, 5}})
	require.NoError(t, err, "ends at exactly MaxInt64")
	assert.Equal(t, int64(math.MaxInt64-1), st.TranslatePoint(4))

	assert.Equal(t, "stage", remap.Stage{}.Name())
}

//----------------------------------------------------------------------------//
// TranslatePoint
//----------------------------------------------------------------------------//

// TestStage_TranslatePoint covers matches and the identity fallback.
func TestStage_TranslatePoint(t *testing.T) {
	st, err := remap.NewStage("seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}})
	require.NoError(t, err)

	cases := map[int64]int64{79: 81, 14: 14, 55: 57, 13: 13, 98: 50, 99: 51, 100: 100}
	for in, want := range cases {
		assert.Equal(t, want, st.TranslatePoint(in), "TranslatePoint(%d)", in)
	}
	assert.Equal(t, int64(42), remap.Stage{}.TranslatePoint(42), "empty stage is identity")
}

//----------------------------------------------------------------------------//
// Apply
//----------------------------------------------------------------------------//

// TestApply_ScenarioA maps a fully contained interval by a single offset.
func TestApply_ScenarioA(t *testing.T) {
	st, err := remap.NewStage("seed", "soil", [][3]int64{{52, 50, 48}, {37, 98, 2}})
	require.NoError(t, err)

	got := st.Apply(interval.NewSet(interval.FromLength(79, 14)))
	want := interval.Set{interval.New(81, 95)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

// TestApply_ScenarioB splits [45,64) across two rule boundaries.
func TestApply_ScenarioB(t *testing.T) {
	// First rule covers all of [45,64); a second rule straddling its right
	// boundary must then see nothing left to claim.
	st := remap.Stage{Rules: []remap.Rule{
		{Source: interval.New(45, 64), Offset: 100},
		{Source: interval.New(60, 70), Offset: -60},
	}}
	got := st.Apply(interval.NewSet(interval.New(45, 64)))
	assert.Equal(t, interval.Set{interval.New(145, 164)}, got)
	assert.Equal(t, int64(19), got.TotalLen())

	// A rule covering only the middle leaves left and right fragments.
	mid := remap.Stage{Rules: []remap.Rule{{Source: interval.New(50, 60), Offset: 1000}}}
	got = mid.Apply(interval.NewSet(interval.New(45, 64)))
	want := interval.Set{interval.New(1050, 1060), interval.New(45, 50), interval.New(60, 64)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(19), got.TotalLen())
}

// TestApply_PassThrough keeps unmatched intervals unchanged.
func TestApply_PassThrough(t *testing.T) {
	st := remap.Stage{Rules: []remap.Rule{{Source: interval.New(100, 200), Offset: 5}}}
	in := interval.NewSet(interval.New(0, 100), interval.New(200, 210))
	assert.Equal(t, in, st.Apply(in), "abutting intervals are not touched")
}

// TestApply_DoesNotMutateInput ensures the input Set is left intact.
func TestApply_DoesNotMutateInput(t *testing.T) {
	st := remap.Stage{Rules: []remap.Rule{{Source: interval.New(0, 5), Offset: 10}}}
	in := interval.Set{interval.New(0, 10)}
	_ = st.Apply(in)
	assert.Equal(t, interval.Set{interval.New(0, 10)}, in)
}

// TestApply_DropsEmptyInput verifies empty intervals never survive.
func TestApply_DropsEmptyInput(t *testing.T) {
	st := remap.Stage{Rules: []remap.Rule{{Source: interval.New(0, 5), Offset: 10}}}
	got := st.Apply(interval.Set{interval.New(3, 3), interval.New(1, 2)})
	assert.Equal(t, interval.Set{interval.New(11, 12)}, got)
}

// TestApply_OrderSensitivity documents that overlapping rule sources make
// the result depend on declaration order: the earlier rule wins.
func TestApply_OrderSensitivity(t *testing.T) {
	a := remap.Rule{Source: interval.New(0, 10), Offset: 100}
	b := remap.Rule{Source: interval.New(5, 15), Offset: 200}
	in := interval.NewSet(interval.New(0, 15))

	ab := remap.Stage{Rules: []remap.Rule{a, b}}
	ba := remap.Stage{Rules: []remap.Rule{b, a}}

	gotAB := ab.Apply(in)
	gotBA := ba.Apply(in)
	assert.Equal(t, interval.Set{interval.New(100, 110), interval.New(210, 215)}, gotAB)
	assert.Equal(t, interval.Set{interval.New(205, 215), interval.New(100, 105)}, gotBA)
	assert.NotEqual(t, gotAB, gotBA, "swapping overlapping rules must change the result")
	assert.Equal(t, gotAB.TotalLen(), gotBA.TotalLen(), "length is conserved either way")

	assert.Equal(t, int64(107), ab.TranslatePoint(7))
	assert.Equal(t, int64(207), ba.TranslatePoint(7))

	assert.Equal(t, [][2]int{{0, 1}}, ab.Overlaps())
}

// TestOverlaps_Disjoint reports nothing for abutting sources.
func TestOverlaps_Disjoint(t *testing.T) {
	st, err := remap.NewStage("", "", [][3]int64{{0, 0, 5}, {0, 5, 5}, {0, 20, 1}})
	require.NoError(t, err)
	assert.Empty(t, st.Overlaps())
}
