// Package observe holds the OpenTelemetry metric instruments recorded by the
// evaluator.
//
// Instruments are created from an injected [metric.MeterProvider]; tests use
// [NewMetrics] with an SDK provider and a manual reader. [DefaultMetrics]
// binds to the global provider, which is a no-op until the host application
// installs one.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/strokematch/score"
)

// meterName is the instrumentation scope name used for all strokematch metrics.
const meterName = "github.com/katalvlaran/strokematch"

// Metrics holds the instruments. All fields are safe for concurrent use.
type Metrics struct {
	// Evaluations counts finished evaluations. Attribute: tier.
	Evaluations metric.Int64Counter

	// Score records the similarity score of every evaluation that reached
	// the alignment step.
	Score metric.Float64Histogram

	// Duration tracks evaluation latency.
	Duration metric.Float64Histogram

	// TemplateUnavailable counts evaluations against a zero-length reference.
	TemplateUnavailable metric.Int64Counter

	// ActiveEvaluations tracks in-flight batch evaluations.
	ActiveEvaluations metric.Int64UpDownCounter
}

// scoreBuckets are the tier and star thresholds.
var scoreBuckets = []float64{
	0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.85, 0.9, 0.95, 1,
}

// latencyBuckets in seconds; a 100×100 alignment takes well under a millisecond.
var latencyBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1,
}

// NewMetrics creates a fully initialised [Metrics] using mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Evaluations, err = m.Int64Counter("strokematch.evaluations",
		metric.WithDescription("Total stroke evaluations by tier."),
	); err != nil {
		return nil, err
	}
	if met.Score, err = m.Float64Histogram("strokematch.score",
		metric.WithDescription("Similarity score of evaluated strokes."),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Duration, err = m.Float64Histogram("strokematch.evaluation.duration",
		metric.WithDescription("Latency of a single stroke evaluation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.TemplateUnavailable, err = m.Int64Counter("strokematch.template_unavailable",
		metric.WithDescription("Evaluations whose reference path had no length."),
	); err != nil {
		return nil, err
	}
	if met.ActiveEvaluations, err = m.Int64UpDownCounter("strokematch.active_evaluations",
		metric.WithDescription("Number of batch evaluations in flight."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] bound to
// [otel.GetMeterProvider], creating it on first call.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordEvaluation records one finished evaluation. scored is false when the
// evaluation stopped before alignment (too short, template unavailable); the
// score histogram is skipped in that case.
func (m *Metrics) RecordEvaluation(ctx context.Context, tier score.Tier, s float64, scored bool, d time.Duration) {
	m.Evaluations.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", tier.Text())))
	if scored {
		m.Score.Record(ctx, s)
	}
	m.Duration.Record(ctx, d.Seconds())
	if tier == score.TemplateUnavailable {
		m.TemplateUnavailable.Add(ctx, 1)
	}
}
