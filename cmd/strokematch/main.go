// Command strokematch scores traced strokes against reference glyphs.
//
//	strokematch glyphs
//	strokematch sample --glyph baa --samples 20
//	strokematch evaluate --glyph baa attempt.json
//
// Stroke files are JSON arrays of points: [{"x": 12, "y": 40, "t": 0}, ...].
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
