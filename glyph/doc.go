// Package glyph is a read-only store of reference glyphs.
//
// A database maps a code-point key ("U+0628") to a Glyph: the character, a
// display name and one Form per positional variant (isolated, initial, medial,
// final). A Form carries the rasm, the skeleton strokes as SVG path data, and
// the nuqat, the positions of decorative dots. Templates are drawn in a
// 100×100 box; only the rasm is used for matching.
//
// Databases are loaded from JSON or YAML:
//
//	{
//	  "U+0628": {
//	    "char": "ب",
//	    "name": "Baa",
//	    "forms": {
//	      "isolated": {"rasm": ["M 85 45 C ..."], "nuqat": [[50, 88]]}
//	    }
//	  }
//	}
//
// Builtin returns a small embedded set. Find resolves user input (a key, the
// character itself or a transliterated name) with Jaro-Winkler similarity and
// a Double Metaphone fallback from github.com/antzucaro/matchr.
package glyph
