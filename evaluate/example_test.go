package evaluate_test

import (
	"fmt"

	"github.com/katalvlaran/strokematch/evaluate"
	"github.com/katalvlaran/strokematch/geom"
	"github.com/katalvlaran/strokematch/glyph"
)

// ExampleEvaluator_EvaluateGlyph traces Alif top to bottom on a larger canvas.
func ExampleEvaluator_EvaluateGlyph() {
	g, _ := glyph.Builtin().Glyph("U+0627")

	raw := make(geom.Stroke, 20)
	for i := range raw {
		raw[i] = geom.Point{X: 200, Y: 100 + float64(i)*300/19}
	}

	res, err := evaluate.New().EvaluateGlyph(raw, g.Forms[glyph.Isolated], 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("tier=%s score=%.2f stars=%d points=%d\n", res.Tier.Text(), res.Score, res.Stars, res.Points)
	fmt.Println(res.Feedback(g.Name))
	// Output:
	// tier=excellent score=1.00 stars=3 points=250
	// 🌟 Excellent! Your Alif matches the template very closely. Keep it up!
}
