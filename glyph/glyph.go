package glyph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/katalvlaran/strokematch/svgpath"
)

// FuzzyThreshold is the minimum Jaro-Winkler similarity for a name match.
const FuzzyThreshold = 0.85

// Database is an immutable glyph collection, safe for concurrent reads.
type Database struct {
	glyphs map[string]Glyph
	keys   []string
}

// New validates glyphs and builds a Database. Keys are canonicalized to
// upper case ("u+0628" → "U+0628"). Every glyph needs at least one form and
// every rasm string must parse; all problems are reported together.
func New(glyphs map[string]Glyph) (*Database, error) {
	db := &Database{glyphs: make(map[string]Glyph, len(glyphs))}
	var errs []error
	for key, g := range glyphs {
		k := canonicalKey(key)
		if k == "" {
			errs = append(errs, errors.New("empty glyph key"))
			continue
		}
		if _, dup := db.glyphs[k]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate key", k))
			continue
		}
		if len(g.Forms) == 0 {
			errs = append(errs, fmt.Errorf("%s: no forms", k))
		}
		for name, f := range g.Forms {
			for i, d := range f.Rasm {
				if _, err := svgpath.Parse(d); err != nil {
					errs = append(errs, fmt.Errorf("%s/%s rasm[%d]: %w", k, name, i, err))
				}
			}
		}
		db.glyphs[k] = g
		db.keys = append(db.keys, k)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	sort.Strings(db.keys)

	return db, nil
}

// Len returns the number of glyphs.
func (db *Database) Len() int {
	return len(db.keys)
}

// Keys returns the glyph keys in sorted order.
func (db *Database) Keys() []string {
	return append([]string(nil), db.keys...)
}

// Glyph returns the glyph stored under key.
func (db *Database) Glyph(key string) (Glyph, bool) {
	g, ok := db.glyphs[canonicalKey(key)]
	return g, ok
}

// Form returns one positional form of the glyph stored under key.
func (db *Database) Form(key, form string) (Form, error) {
	g, ok := db.Glyph(key)
	if !ok {
		return Form{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, key)
	}
	f, ok := g.Forms[form]
	if !ok {
		return Form{}, fmt.Errorf("%w: %q has no %q form", ErrUnknownForm, key, form)
	}

	return f, nil
}

// Find resolves a query to a key. It tries, in order: the key itself, the
// glyph character, the exact name (case-insensitive), the closest name by
// Jaro-Winkler similarity (at least FuzzyThreshold) and finally a name with
// the same Double Metaphone code, so "sin" finds "Seen".
func (db *Database) Find(query string) (string, Glyph, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", Glyph{}, fmt.Errorf("%w: empty query", ErrUnknownGlyph)
	}
	if g, ok := db.Glyph(q); ok {
		return canonicalKey(q), g, nil
	}
	lower := strings.ToLower(q)
	for _, k := range db.keys {
		g := db.glyphs[k]
		if g.Char == q || strings.ToLower(g.Name) == lower {
			return k, g, nil
		}
	}

	best, bestScore := "", 0.0
	for _, k := range db.keys {
		s := matchr.JaroWinkler(lower, strings.ToLower(db.glyphs[k].Name), false)
		if s >= FuzzyThreshold && s > bestScore {
			best, bestScore = k, s
		}
	}
	if best != "" {
		return best, db.glyphs[best], nil
	}

	if code, _ := matchr.DoubleMetaphone(lower); code != "" {
		for _, k := range db.keys {
			if c, _ := matchr.DoubleMetaphone(strings.ToLower(db.glyphs[k].Name)); c == code {
				return k, db.glyphs[k], nil
			}
		}
	}

	return "", Glyph{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, query)
}

// FormNames returns the glyph's form names: isolated, initial, medial and
// final first, then any others alphabetically.
func (g Glyph) FormNames() []string {
	names := make([]string, 0, len(g.Forms))
	for n := range g.Forms {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iok := formOrder[names[i]]
		rj, jok := formOrder[names[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return names[i] < names[j]
		}
	})

	return names
}

func canonicalKey(k string) string {
	return strings.ToUpper(strings.TrimSpace(k))
}
