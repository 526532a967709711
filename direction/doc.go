// Package direction judges whether a raw stroke was written right-to-left,
// as Arabic script requires.
//
// The analyzer looks only at horizontal motion over coarse windows of the raw
// (unnormalized) stroke, so the threshold is expressed in input units
// (pixels or device-independent units):
//
//	for i := 0; i+Stride < len(s); i += Stride {
//	    dx := s[i+Stride].X - s[i].X
//	    if |dx| > MinDelta { total++; if dx < 0 { rtl++ } }
//	}
//	consistency = rtl/total   (1 when nothing was countable)
//	rightToLeft = consistency > 0.5
//
// Near-vertical windows (|dx| ≤ MinDelta) are ignored. Strokes with fewer than
// MinPoints points are assumed correct: {RightToLeft: true, Consistency: 1}.
package direction
