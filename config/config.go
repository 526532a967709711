// Package config loads the strokematch YAML configuration.
//
//	log_level: info        # debug | info | warn | error
//	glyphs: ""             # JSON/YAML glyph database; empty = builtin set
//	evaluation:
//	  max_samples: 100     # 2..1000
//	  min_points: 6        # >= 1
//	  window: -1           # DTW band; -1 = unlimited
//	  slope_penalty: 0     # >= 0
//	  direction:
//	    min_points: 10
//	    stride: 5          # >= 1
//	    min_delta: 3       # >= 0
//
// Omitted keys keep their Default values; unknown keys are rejected.
package config

import (
	"log/slog"

	"github.com/katalvlaran/strokematch/direction"
	"github.com/katalvlaran/strokematch/dtw"
	"github.com/katalvlaran/strokematch/evaluate"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l to a slog level; unknown values map to Info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the top-level configuration.
type Config struct {
	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// Glyphs is the path of a glyph database. Empty selects the builtin set.
	Glyphs string `yaml:"glyphs"`

	Evaluation Evaluation `yaml:"evaluation"`
}

// Evaluation tunes the evaluator.
type Evaluation struct {
	MaxSamples   int       `yaml:"max_samples"`
	MinPoints    int       `yaml:"min_points"`
	Window       int       `yaml:"window"`
	SlopePenalty float64   `yaml:"slope_penalty"`
	Direction    Direction `yaml:"direction"`
}

// Direction tunes the right-to-left analysis.
type Direction struct {
	MinPoints int     `yaml:"min_points"`
	Stride    int     `yaml:"stride"`
	MinDelta  float64 `yaml:"min_delta"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	d := direction.DefaultOptions()
	return &Config{
		LogLevel: LogInfo,
		Evaluation: Evaluation{
			MaxSamples: evaluate.DefaultMaxSamples,
			MinPoints:  evaluate.DefaultMinPoints,
			Window:     -1,
			Direction: Direction{
				MinPoints: d.MinPoints,
				Stride:    d.Stride,
				MinDelta:  d.MinDelta,
			},
		},
	}
}

// EvaluatorOptions maps the evaluation section to evaluator options.
func (c *Config) EvaluatorOptions() []evaluate.Option {
	ev := c.Evaluation
	o := dtw.DefaultOptions()
	o.Window = ev.Window
	o.SlopePenalty = ev.SlopePenalty

	return []evaluate.Option{
		evaluate.WithMaxSamples(ev.MaxSamples),
		evaluate.WithMinPoints(ev.MinPoints),
		evaluate.WithDTWOptions(o),
		evaluate.WithDirection(direction.Options{
			MinPoints: ev.Direction.MinPoints,
			Stride:    ev.Direction.Stride,
			MinDelta:  ev.Direction.MinDelta,
		}),
	}
}
