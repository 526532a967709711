package glyph

import (
	"errors"

	"github.com/katalvlaran/strokematch/svgpath"
)

// Positional forms.
const (
	Isolated = "isolated"
	Initial  = "initial"
	Medial   = "medial"
	Final    = "final"
)

var (
	// ErrUnknownGlyph is returned when no glyph matches a key or query.
	ErrUnknownGlyph = errors.New("glyph: unknown glyph")

	// ErrUnknownForm is returned when a glyph has no such positional form.
	ErrUnknownForm = errors.New("glyph: unknown form")

	// ErrFormat is returned for an unsupported database format.
	ErrFormat = errors.New("glyph: unsupported format")

	// ErrInvalid is returned when a database fails validation.
	ErrInvalid = errors.New("glyph: invalid database")
)

// Format selects a database encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Form is one positional variant of a glyph.
type Form struct {
	Rasm  []string     `json:"rasm" yaml:"rasm"`
	Nuqat [][2]float64 `json:"nuqat,omitempty" yaml:"nuqat,omitempty"`
}

// Descriptor joins the rasm sub-paths and parses them as one path.
func (f Form) Descriptor() (*svgpath.Path, error) {
	return svgpath.ParseJoined(f.Rasm...)
}

// Glyph is a letter with its positional forms.
type Glyph struct {
	Char  string          `json:"char" yaml:"char"`
	Name  string          `json:"name" yaml:"name"`
	Forms map[string]Form `json:"forms" yaml:"forms"`
}

// formOrder ranks the well-known forms; others sort after them by name.
var formOrder = map[string]int{Isolated: 0, Initial: 1, Medial: 2, Final: 3}
