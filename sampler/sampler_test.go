package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokematch/geom"
	"github.com/katalvlaran/strokematch/sampler"
	"github.com/katalvlaran/strokematch/svgpath"
)

// TestSample_BadCount verifies counts below two are rejected.
func TestSample_BadCount(t *testing.T) {
	p, err := svgpath.Parse("M 0 0 L 10 0")
	require.NoError(t, err)
	for _, n := range []int{-1, 0, 1} {
		_, err := sampler.Sample(p, n)
		assert.ErrorIs(t, err, sampler.ErrBadCount, "n=%d", n)
	}
}

// TestSample_ZeroLength verifies a degenerate path yields an empty stroke.
func TestSample_ZeroLength(t *testing.T) {
	for _, d := range []string{"", "M 10 10", "M 10 10 L 10 10", "M 3 3 Z"} {
		p, err := svgpath.Parse(d)
		require.NoError(t, err)
		out, err := sampler.Sample(p, 50)
		require.NoError(t, err, d)
		assert.Empty(t, out, d)
	}
}

// TestSample_Diagonal checks equal spacing on a straight diagonal.
func TestSample_Diagonal(t *testing.T) {
	out, err := sampler.SampleSVG(5, "M 0 0 L 100 100")
	require.NoError(t, err)
	require.Len(t, out, 5)
	for i, p := range out {
		want := 25 * float64(i)
		assert.InDelta(t, want, p.X, 1e-9)
		assert.InDelta(t, want, p.Y, 1e-9)
		assert.Zero(t, p.T)
	}
}

// TestSample_EndpointsInclusive checks first and last samples hit the ends.
func TestSample_EndpointsInclusive(t *testing.T) {
	out, err := sampler.SampleSVG(2, "M 80 20 Q 50 90 20 20")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, geom.Point{X: 80, Y: 20}, out[0])
	assert.InDelta(t, 20.0, out[1].X, 1e-9)
	assert.InDelta(t, 20.0, out[1].Y, 1e-9)
}

// TestSample_SubPathsInOrder verifies sub-paths are walked in order.
func TestSample_SubPathsInOrder(t *testing.T) {
	out, err := sampler.SampleSVG(3, "M 0 0 L 10 0", "M 50 50 L 60 50")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, out[0])
	// offset 10 is the end of the first sub-path
	assert.Equal(t, geom.Point{X: 10, Y: 0}, out[1])
	assert.Equal(t, geom.Point{X: 60, Y: 50}, out[2])
}

// TestSample_EqualArcLength verifies consecutive samples are (nearly)
// equidistant along a curve.
func TestSample_EqualArcLength(t *testing.T) {
	p, err := svgpath.Parse("M 0 50 C 0 0 100 0 100 50")
	require.NoError(t, err)
	out, err := sampler.Sample(p, 21)
	require.NoError(t, err)
	step := p.Length() / 20
	for i := 1; i < len(out); i++ {
		assert.InDelta(t, step, geom.Euclidean(out[i-1], out[i]), step*0.02)
	}
}

// TestSampleSVG_ParseError verifies parse errors are wrapped.
func TestSampleSVG_ParseError(t *testing.T) {
	_, err := sampler.SampleSVG(10, "Q 1 2 3 4")
	assert.ErrorIs(t, err, svgpath.ErrSyntax)
}
