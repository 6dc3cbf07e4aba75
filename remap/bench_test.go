package remap_test

import (
	"testing"

	"github.com/katalvlaran/rangemap/builder"
	"github.com/katalvlaran/rangemap/remap"
)

// BenchmarkRemapRanges pushes 100 intervals through 7 stages of 40 rules.
func BenchmarkRemapRanges(b *testing.B) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithSpan(0, 1_000_000), builder.WithMaxLen(50_000)}
	p, err := builder.Pipeline(7, 40, opts...)
	if err != nil {
		b.Fatal(err)
	}
	in, err := builder.Set(100, opts...)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = remap.RemapRanges(in, p)
	}
}

// BenchmarkRemapPoint compares the linear scan with the compiled Lookup.
func BenchmarkRemapPoint(b *testing.B) {
	p, err := builder.Pipeline(7, 200, builder.WithSeed(7), builder.WithSpan(0, 1_000_000))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Linear", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = remap.RemapPoint(int64(i%1_000_000), p)
		}
	})
	b.Run("Lookup", func(b *testing.B) {
		lk := remap.NewLookup(p)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = lk.Remap(int64(i % 1_000_000))
		}
	})
}
