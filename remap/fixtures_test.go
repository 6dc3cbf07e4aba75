package remap_test

import (
	"testing"

	"github.com/katalvlaran/rangemap/remap"
	"github.com/stretchr/testify/require"
)

// workedStages is the canonical seven-stage almanac example.
var workedStages = []struct {
	src, dst string
	rules    [][3]int64
}{
	{"seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]int64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]int64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]int64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]int64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]int64{{60, 56, 37}, {56, 93, 4}}},
}

// workedSeeds is the seed line of the worked example.
var workedSeeds = []int64{79, 14, 55, 13}

// workedPipeline builds the worked example pipeline.
func workedPipeline(t testing.TB) remap.Pipeline {
	t.Helper()
	p := make(remap.Pipeline, 0, len(workedStages))
	for _, ws := range workedStages {
		st, err := remap.NewStage(ws.src, ws.dst, ws.rules)
		require.NoError(t, err)
		p = append(p, st)
	}
	return p
}
