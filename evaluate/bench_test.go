package evaluate_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/strokematch/evaluate"
)

func BenchmarkEvaluateStroke(b *testing.B) {
	ev := quiet()
	ref := mustParse(b, "M 88 42 C 90 68 78 72 50 72 C 22 72 10 68 12 42")
	raw := line(100, 900, 500, 100, 500, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.EvaluateStroke(raw, ref, 0)
	}
}

func BenchmarkEvaluateBatch(b *testing.B) {
	ev := quiet()
	ref := mustParse(b, "M 88 42 C 90 68 78 72 50 72 C 22 72 10 68 12 42")
	reqs := make([]evaluate.Request, 32)
	for i := range reqs {
		reqs[i] = evaluate.Request{Stroke: line(100, 900, 500, 100, 500, 5), Reference: ref}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ev.EvaluateBatch(context.Background(), reqs)
	}
}
