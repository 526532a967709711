package evaluate

import (
	"log/slog"

	"github.com/katalvlaran/strokematch/direction"
	"github.com/katalvlaran/strokematch/dtw"
	"github.com/katalvlaran/strokematch/observe"
)

// Defaults.
const (
	DefaultMaxSamples = 100
	DefaultMinPoints  = 6
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics records every evaluation on m. Default: no metrics.
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Evaluator) {
		e.metrics = m
	}
}

// WithMaxSamples caps the number of reference samples. Values below 2 are
// ignored. Default: 100.
func WithMaxSamples(n int) Option {
	return func(e *Evaluator) {
		if n >= 2 {
			e.maxSamples = n
		}
	}
}

// WithMinPoints sets the minimum raw stroke length. Values below 1 are
// ignored. Default: 6.
func WithMinPoints(n int) Option {
	return func(e *Evaluator) {
		if n >= 1 {
			e.minPoints = n
		}
	}
}

// WithDistance replaces the point distance used by the alignment.
// Default: Euclidean.
func WithDistance(d dtw.DistanceFunc) Option {
	return func(e *Evaluator) {
		if d != nil {
			e.dist = d
		}
	}
}

// WithDTWOptions sets the alignment window and slope penalty. A Window below
// -1 or a negative SlopePenalty is ignored. The path is always recovered,
// since the score depends on its length, so ReturnPath and MemoryMode are
// overridden.
func WithDTWOptions(o dtw.Options) Option {
	return func(e *Evaluator) {
		if o.Window < -1 || !(o.SlopePenalty >= 0) {
			return
		}
		o.ReturnPath = true
		o.MemoryMode = dtw.FullMatrix
		e.dtwOpts = o
	}
}

// WithDirection tunes the direction analysis. Default: direction.DefaultOptions().
func WithDirection(o direction.Options) Option {
	return func(e *Evaluator) {
		e.direction = o
	}
}
