package glyph

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.json
var builtinJSON string

var builtin = sync.OnceValues(func() (*Database, error) {
	return Decode(strings.NewReader(builtinJSON), FormatJSON)
})

// Builtin returns the embedded database: Alif, Baa, Taa, Noon and Seen.
func Builtin() *Database {
	db, err := builtin()
	if err != nil {
		panic("glyph: embedded database is invalid: " + err.Error())
	}

	return db
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
}

// Load reads a database file; the format follows the extension.
func Load(path string) (*Database, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: open %q: %w", path, err)
	}
	defer f.Close()

	db, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("glyph: load %q: %w", path, err)
	}
	return db, nil
}

// Decode reads a database from r. YAML input rejects unknown fields; JSON
// input ignores them, so files exported with extra metadata still load.
func Decode(r io.Reader, format Format) (*Database, error) {
	var glyphs map[string]Glyph
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&glyphs); err != nil {
			return nil, fmt.Errorf("glyph: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&glyphs); err != nil {
			return nil, fmt.Errorf("glyph: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return New(glyphs)
}
