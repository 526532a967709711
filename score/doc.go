// Package score turns an alignment into a similarity score, a feedback tier
// and a star rating.
//
// Scoring
//
//	score = clamp(1 - 2·cost/len(path), 0, 1)
//
// The cost is divided by the warping-path length, so strokes of different
// sample counts are comparable. Both strokes are expected to be normalized
// (unit extent, centered), which keeps the per-step distance in roughly
// [0, 0.5] for a good trace: an average distance of 0.5 already scores 0.
//
// Classification
//
//	!RightToLeft && Consistency < 0.6  → DirectionWarning
//	score ≥ 0.85                       → Excellent
//	score ≥ 0.70                       → Good
//	score ≥ 0.50                       → Developing
//	otherwise                          → NeedsPractice
//
// The direction check wins over the score: a perfect shape traced
// left-to-right is still a DirectionWarning.
//
// Stars
//
//	score ≥ 0.95 → 3,  ≥ 0.85 → 2,  ≥ 0.70 → 1,  otherwise 0
//
// All functions are pure.
package score
