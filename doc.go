// Package strokematch scores a learner's traced stroke against the reference
// path of an Arabic letter form and turns the result into coaching feedback.
//
// 🚀 What is strokematch?
//
//	A small, pure-Go matching engine that brings together:
//		• Geometry: bounding boxes, normalization to a unit frame
//		• SVG paths: parsing, curve flattening, arc-length sampling
//		• Alignment: 2-D Dynamic Time Warping with warping path
//		• Direction: right-to-left consistency of the raw stroke
//		• Scoring: similarity score, feedback tier, stars and points
//		• Glyphs: JSON/YAML glyph database with fuzzy lookup
//
// ✨ Why strokematch?
//
//   - Deterministic: every core function is pure and allocation-local
//   - Resolution independent: strokes are compared after normalization
//   - Safe for concurrency: an Evaluator is immutable, batches fan out
//   - Observable: optional slog logging and OpenTelemetry metrics
//
// Packages, leaf first:
//
//	geom/      — Point, Stroke, Bounds, Normalize, Euclidean
//	svgpath/   — SVG path data → measurable Path (Length, PointAt)
//	sampler/   — equal arc-length resampling of a reference path
//	dtw/       — Align (cost + path), windowing, memory modes
//	direction/ — right-to-left consistency analysis
//	score/     — Score, Classify, Stars, RewardFor, Tier
//	feedback/  — per-tier coaching messages
//	glyph/     — reference glyph database (builtin, JSON, YAML)
//	observe/   — OpenTelemetry instruments
//	evaluate/  — the Evaluator: the whole pipeline in one call
//	config/    — YAML configuration
//
// Quick example:
//
//	form, _ := glyph.Builtin().Form("U+0628", glyph.Isolated)
//	res, _ := evaluate.New().EvaluateGlyph(stroke, form, 0)
//	fmt.Println(res.Tier, res.Score, res.Feedback("Baa"))
//
// The strokematch command (cmd/strokematch) wraps the same pipeline for
// stroke files on disk.
//
//	go install github.com/katalvlaran/strokematch/cmd/strokematch@latest
package strokematch
