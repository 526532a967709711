package dtw

import (
	"math"

	"github.com/katalvlaran/strokematch/geom"
)

// Align — Dynamic Time Warping over 2-D point sequences
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate an n×m matrix D.
//  2. D[0][0] = d(a0, b0)
//     D[i][0] = D[i-1][0] + d(ai, b0) + SlopePenalty
//     D[0][j] = D[0][j-1] + d(a0, bj) + SlopePenalty
//  3. For i = 1..n-1, j = 1..m-1 (and |i-j| ≤ Window, if constrained):
//     D[i][j] = d(ai, bj) + min(D[i-1][j] + P, D[i-1][j-1], D[i][j-1] + P)
//  4. cost = D[n-1][m-1].
//  5. If ReturnPath, backtrack from (n-1,m-1) to (0,0). With both indices
//     positive the predecessor is chosen by nested comparisons:
//     up < diag ? (up < left ? up : left) : (diag < left ? diag : left)
//     so exact ties resolve to left first, then diagonal, then up.
//     On the first row the only move is left, on the first column up.
//
// With Window = -1 and SlopePenalty = 0 this is exactly the classic
// recurrence; cells outside the band hold +Inf.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)
//
// Errors:
//   - ErrEmptySequence   — if either input is empty (Result is zero, Path nil).
//   - ErrPathNeedsMatrix — if ReturnPath=true with TwoRows mode.
//   - ErrBadWindow       — if Window < -1.
//   - ErrBadPenalty      — if SlopePenalty < 0.
//
// A nil dist uses Euclidean; nil opts uses DefaultOptions.
func Align(a, b geom.Stroke, dist DistanceFunc, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(o); err != nil {
		return Result{}, err
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Result{}, ErrEmptySequence
	}
	if dist == nil {
		dist = Euclidean
	}

	if o.MemoryMode == TwoRows {
		return Result{Cost: rollingCost(a, b, dist, o)}, nil
	}

	d := fill(a, b, dist, o)
	res := Result{Cost: d[n-1][m-1]}
	if o.ReturnPath {
		res.Path = backtrack(d)
	}

	return res, nil
}

// Cost returns only the alignment cost of a and b using the TwoRows mode.
func Cost(a, b geom.Stroke, dist DistanceFunc) (float64, error) {
	o := DefaultOptions()
	o.ReturnPath = false
	o.MemoryMode = TwoRows
	res, err := Align(a, b, dist, &o)

	return res.Cost, err
}

func validate(o Options) error {
	if o.Window < -1 {
		return ErrBadWindow
	}
	if o.SlopePenalty < 0 {
		return ErrBadPenalty
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// outside reports whether (i, j) falls outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

// fill builds the full cumulative-cost matrix.
func fill(a, b geom.Stroke, dist DistanceFunc, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	p := o.SlopePenalty

	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, m)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if outside(i, j, o.Window) {
				d[i][j] = inf
				continue
			}
			var best float64
			switch {
			case i == 0 && j == 0:
				best = 0
			case i == 0:
				best = d[0][j-1] + p
			case j == 0:
				best = d[i-1][0] + p
			default:
				best = min3(d[i-1][j]+p, d[i-1][j-1], d[i][j-1]+p)
			}
			d[i][j] = best + dist(a[i], b[j])
		}
	}

	return d
}

// rollingCost computes D[n-1][m-1] keeping only two rows.
func rollingCost(a, b geom.Stroke, dist DistanceFunc, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	p := o.SlopePenalty

	prev := make([]float64, m)
	curr := make([]float64, m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			var best float64
			switch {
			case i == 0 && j == 0:
				best = 0
			case i == 0:
				best = curr[j-1] + p
			case j == 0:
				best = prev[0] + p
			default:
				best = min3(prev[j]+p, prev[j-1], curr[j-1]+p)
			}
			curr[j] = best + dist(a[i], b[j])
		}
		prev, curr = curr, prev
	}

	return prev[m-1]
}

// backtrack walks d from the last cell to (0,0) and returns the path oldest
// first.
func backtrack(d [][]float64) []Coord {
	i, j := len(d)-1, len(d[0])-1
	path := make([]Coord, 0, i+j+1)
	path = append(path, Coord{I: i, J: j})
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			up, diag, left := d[i-1][j], d[i-1][j-1], d[i][j-1]
			if up < diag {
				if up < left {
					i--
				} else {
					j--
				}
			} else if diag < left {
				i--
				j--
			} else {
				j--
			}
		}
		path = append(path, Coord{I: i, J: j})
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}

	return c
}
