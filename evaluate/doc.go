// Package evaluate is the entry point of the stroke-matching engine: it turns
// a raw traced stroke and a reference path into a score, a feedback tier, a
// star rating and progress points.
//
// Pipeline
//
//  1. Reject raw strokes shorter than MinPoints (too short → NeedsPractice).
//  2. Pick the sample count n: the caller's value, or min(len(raw), MaxSamples)
//     when it is not positive; never more than MaxSamples.
//  3. Sample n reference points at equal arc length. A zero-length reference
//     yields TemplateUnavailable.
//  4. Normalize both strokes (center on the bounding box, unit extent).
//  5. Align them with DTW and score the alignment.
//  6. Analyze the writing direction on the raw stroke and classify.
//  7. Award stars and points.
//
// The raw stroke keeps its original length; only the reference is resampled,
// so the warping path absorbs any difference in speed or density.
//
// An Evaluator is immutable after New and safe for concurrent use.
// EvaluateBatch fans independent requests out over an errgroup bounded by
// GOMAXPROCS. Logging (log/slog) and metrics (OpenTelemetry) are optional
// side channels and never change a result.
package evaluate
