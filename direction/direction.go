package direction

import (
	"math"

	"github.com/katalvlaran/strokematch/geom"
)

// Defaults used by Analyze.
const (
	DefaultMinPoints = 10
	DefaultStride    = 5
	DefaultMinDelta  = 3.0
)

// Assessment is the outcome of a direction analysis.
type Assessment struct {
	RightToLeft bool    `json:"right_to_left"`
	Consistency float64 `json:"consistency"`
}

// Options tunes the analysis.
//
//   - MinPoints — strokes shorter than this are not judged.
//   - Stride    — distance, in samples, between the two ends of a window.
//   - MinDelta  — minimum |dx| for a window to count.
type Options struct {
	MinPoints int
	Stride    int
	MinDelta  float64
}

// DefaultOptions returns MinPoints 10, Stride 5, MinDelta 3.
func DefaultOptions() Options {
	return Options{
		MinPoints: DefaultMinPoints,
		Stride:    DefaultStride,
		MinDelta:  DefaultMinDelta,
	}
}

// Analyze runs AnalyzeWith(s, DefaultOptions()).
func Analyze(s geom.Stroke) Assessment {
	return AnalyzeWith(s, DefaultOptions())
}

// AnalyzeWith inspects raw stroke coordinates for right-to-left consistency.
// A Stride below 1 or a negative MinDelta falls back to the default.
func AnalyzeWith(s geom.Stroke, opts Options) Assessment {
	if opts.Stride < 1 {
		opts.Stride = DefaultStride
	}
	if opts.MinDelta < 0 {
		opts.MinDelta = DefaultMinDelta
	}
	if len(s) < opts.MinPoints {
		return Assessment{RightToLeft: true, Consistency: 1}
	}

	var rtl, total int
	for i := 0; i+opts.Stride < len(s); i += opts.Stride {
		dx := s[i+opts.Stride].X - s[i].X
		if math.Abs(dx) > opts.MinDelta {
			total++
			if dx < 0 {
				rtl++
			}
		}
	}

	consistency := 1.0
	if total > 0 {
		consistency = float64(rtl) / float64(total)
	}

	return Assessment{RightToLeft: consistency > 0.5, Consistency: consistency}
}
