package svgpath

import (
	"fmt"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/katalvlaran/strokematch/geom"
)

// Join concatenates several path-data strings into one, separated by a single
// space, so that they are measured as one logical curve.
func Join(d ...string) string {
	return strings.Join(d, " ")
}

// Parse parses SVG path data with DefaultOptions.
func Parse(d string) (*Path, error) {
	return ParseWith(d, DefaultOptions())
}

// ParseJoined joins the given sub-paths and parses the result.
func ParseJoined(d ...string) (*Path, error) {
	return Parse(Join(d...))
}

// ParseWith parses SVG path data into a flattened Path.
//
// Empty (or separator-only) data yields an empty Path and no error. Any other
// data must start with a MoveTo. Errors wrap ErrSyntax.
func ParseWith(d string, opts Options) (*Path, error) {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	p := &Path{}

	body := strings.TrimLeft(d, separators)
	if strings.TrimRight(body, separators) == "" {
		return p, nil
	}
	if body[0] != 'M' && body[0] != 'm' {
		return nil, fmt.Errorf("%w: path must start with a moveto, got %q", ErrSyntax, body[0])
	}

	cp, err := canvas.ParseSVGPath(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	flat := cp.Flatten(tol)
	if coords := flat.Coords(); len(coords) > 0 {
		p.origin = point(coords[0])
	}
	for _, sub := range flat.Split() {
		coords := sub.Coords()
		for i := 1; i < len(coords); i++ {
			p.chord(point(coords[i-1]), point(coords[i]))
		}
	}

	return p, nil
}

// separators are the bytes SVG allows between commands and numbers.
const separators = " \t\n\r\f,"

func point(c canvas.Point) geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}
