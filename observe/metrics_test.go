package observe_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/katalvlaran/strokematch/observe"
	"github.com/katalvlaran/strokematch/score"
)

// newTestMetrics returns Metrics backed by a ManualReader.
func newTestMetrics(t *testing.T) (*observe.Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := observe.NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetrics(t *testing.T) {
	m, _ := newTestMetrics(t)
	require.NotNil(t, m)
	assert.NotNil(t, m.Evaluations)
	assert.NotNil(t, m.ActiveEvaluations)
}

func TestRecordEvaluation(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordEvaluation(ctx, score.Excellent, 0.97, true, 2*time.Millisecond)
	m.RecordEvaluation(ctx, score.Excellent, 0.91, true, time.Millisecond)
	m.RecordEvaluation(ctx, score.TemplateUnavailable, 0, false, time.Microsecond)

	rm := collect(t, reader)

	evals := findMetric(rm, "strokematch.evaluations")
	require.NotNil(t, evals)
	sum, ok := evals.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	byTier := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, found := dp.Attributes.Value(attribute.Key("tier"))
		require.True(t, found)
		byTier[v.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"excellent": 2, "template_unavailable": 1}, byTier)

	hist := findMetric(rm, "strokematch.score")
	require.NotNil(t, hist)
	h, ok := hist.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, h.DataPoints, 1)
	assert.Equal(t, uint64(2), h.DataPoints[0].Count, "unscored evaluations are not recorded")

	dur := findMetric(rm, "strokematch.evaluation.duration")
	require.NotNil(t, dur)
	d, ok := dur.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	assert.Equal(t, uint64(3), d.DataPoints[0].Count)

	unavailable := findMetric(rm, "strokematch.template_unavailable")
	require.NotNil(t, unavailable)
	u, ok := unavailable.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(1), u.DataPoints[0].Value)
}

func TestActiveEvaluations(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ActiveEvaluations.Add(ctx, 3)
	m.ActiveEvaluations.Add(ctx, -1)

	met := findMetric(collect(t, reader), "strokematch.active_evaluations")
	require.NotNil(t, met)
	sum, ok := met.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

func TestDefaultMetrics_Singleton(t *testing.T) {
	assert.Same(t, observe.DefaultMetrics(), observe.DefaultMetrics())
}
