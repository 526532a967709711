package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/strokematch/dtw"
	"github.com/katalvlaran/strokematch/geom"
)

// wave returns n points on a sine wave, a cheap stand-in for a stroke.
func wave(n int, phase float64) geom.Stroke {
	s := make(geom.Stroke, n)
	for i := range s {
		x := float64(i) / float64(n)
		s[i] = geom.Point{X: x, Y: math.Sin(2*math.Pi*x + phase)}
	}
	return s
}

// benchmarkAlign is a helper that runs Align on sequences of lengths n and m using opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkAlign(b *testing.B, n, m int, opts dtw.Options) {
	a := wave(n, 0)
	bSeq := wave(m, 0.3)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Align(a, bSeq, dtw.Euclidean, &opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_FullMatrix100 benchmarks the interactive case: 100×100 with path.
func BenchmarkAlign_FullMatrix100(b *testing.B) {
	benchmarkAlign(b, 100, 100, dtw.DefaultOptions())
}

// BenchmarkAlign_FullMatrix500 benchmarks a long free-hand stroke against 100 samples.
func BenchmarkAlign_FullMatrix500(b *testing.B) {
	benchmarkAlign(b, 500, 100, dtw.DefaultOptions())
}

// BenchmarkAlign_TwoRows100 benchmarks cost-only alignment on 100×100.
func BenchmarkAlign_TwoRows100(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	opts.ReturnPath = false
	benchmarkAlign(b, 100, 100, opts)
}

// BenchmarkAlign_Window10 benchmarks a ±10 Sakoe–Chiba band on 100×100.
func BenchmarkAlign_Window10(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 10
	benchmarkAlign(b, 100, 100, opts)
}
