package evaluate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/strokematch/direction"
	"github.com/katalvlaran/strokematch/dtw"
	"github.com/katalvlaran/strokematch/feedback"
	"github.com/katalvlaran/strokematch/geom"
	"github.com/katalvlaran/strokematch/glyph"
	"github.com/katalvlaran/strokematch/observe"
	"github.com/katalvlaran/strokematch/sampler"
	"github.com/katalvlaran/strokematch/score"
	"github.com/katalvlaran/strokematch/svgpath"
)

// Result is the outcome of one evaluation.
//
// Cost is +Inf when a DTW window rejects every alignment; Score is 0 then.
type Result struct {
	Score     float64              `json:"score"`
	Tier      score.Tier           `json:"tier"`
	Stars     int                  `json:"stars"`
	Points    int                  `json:"points"`
	Direction direction.Assessment `json:"direction"`
	Cost      float64              `json:"cost"`
	PathLen   int                  `json:"path_len"`
	Samples   int                  `json:"samples"`
	TooShort  bool                 `json:"too_short,omitempty"`
}

// Feedback renders the coaching message for this result.
func (r Result) Feedback(glyphName string) string {
	if r.TooShort {
		return feedback.MessageTooShort()
	}

	return feedback.Message(r.Tier, glyphName, r.Direction.Consistency)
}

// Evaluator scores strokes against reference paths.
type Evaluator struct {
	logger     *slog.Logger
	metrics    *observe.Metrics
	maxSamples int
	minPoints  int
	dist       dtw.DistanceFunc
	dtwOpts    dtw.Options
	direction  direction.Options
}

// New returns an Evaluator configured by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger:     slog.Default(),
		maxSamples: DefaultMaxSamples,
		minPoints:  DefaultMinPoints,
		dist:       dtw.Euclidean,
		dtwOpts:    dtw.DefaultOptions(),
		direction:  direction.DefaultOptions(),
	}
	for _, o := range opts {
		o(e)
	}

	return e
}

// MaxSamples returns the configured sample cap.
func (e *Evaluator) MaxSamples() int { return e.maxSamples }

// MinPoints returns the configured minimum raw stroke length.
func (e *Evaluator) MinPoints() int { return e.minPoints }

// EvaluateStroke evaluates raw against ref using sampleCount reference
// samples (≤ 0 picks min(len(raw), MaxSamples)). It never fails: invalid
// input maps to a tier. raw and ref are not modified.
func (e *Evaluator) EvaluateStroke(raw geom.Stroke, ref svgpath.Descriptor, sampleCount int) Result {
	return e.evaluate(context.Background(), raw, ref, sampleCount)
}

// EvaluateGlyph parses form's rasm as one path and evaluates raw against it.
// The only error is a rasm parse error.
func (e *Evaluator) EvaluateGlyph(raw geom.Stroke, form glyph.Form, sampleCount int) (Result, error) {
	ref, err := form.Descriptor()
	if err != nil {
		return Result{}, err
	}

	return e.EvaluateStroke(raw, ref, sampleCount), nil
}

// SampleCount returns the number of reference samples used for a raw stroke
// of rawLen points when the caller asks for requested.
func (e *Evaluator) SampleCount(rawLen, requested int) int {
	n := requested
	if n <= 0 {
		n = min(rawLen, e.maxSamples)
	}

	return min(n, e.maxSamples)
}

func (e *Evaluator) evaluate(ctx context.Context, raw geom.Stroke, ref svgpath.Descriptor, sampleCount int) Result {
	start := time.Now()
	res := Result{Tier: score.NeedsPractice}
	scored := false
	defer func() {
		if e.metrics != nil {
			e.metrics.RecordEvaluation(ctx, res.Tier, res.Score, scored, time.Since(start))
		}
	}()

	res.Direction = direction.AnalyzeWith(raw, e.direction)
	if len(raw) < e.minPoints {
		res.TooShort = true
		e.logger.Debug("evaluate: stroke too short", "points", len(raw), "min", e.minPoints)
		return res
	}

	n := e.SampleCount(len(raw), sampleCount)
	if ref == nil || ref.Length() <= 0 {
		res.Tier = score.TemplateUnavailable
		e.logger.Warn("evaluate: template unavailable", "points", len(raw))
		return res
	}
	tmpl, err := sampler.Sample(ref, n)
	if errors.Is(err, sampler.ErrBadCount) {
		res.TooShort = true
		e.logger.Debug("evaluate: sample count too small", "samples", n)
		return res
	}
	res.Samples = n

	al, err := dtw.Align(geom.Normalize(raw), geom.Normalize(tmpl), e.dist, &e.dtwOpts)
	if err != nil {
		e.logger.Warn("evaluate: alignment failed", "err", err)
		return res
	}

	res.Score = score.Score(al)
	res.Cost = al.Cost
	res.PathLen = len(al.Path)
	res.Tier = score.Classify(res.Score, res.Direction)
	reward := score.RewardFor(res.Score)
	res.Stars, res.Points = reward.Stars, reward.Points
	scored = true

	e.logger.Debug("evaluate: stroke scored",
		"score", res.Score,
		"tier", res.Tier,
		"samples", n,
		"cost", res.Cost,
		"consistency", res.Direction.Consistency,
	)

	return res
}

var std = New(WithLogger(slog.New(slog.DiscardHandler)))

// EvaluateStroke evaluates with the default configuration and no logging.
func EvaluateStroke(raw geom.Stroke, ref svgpath.Descriptor, sampleCount int) Result {
	return std.EvaluateStroke(raw, ref, sampleCount)
}
