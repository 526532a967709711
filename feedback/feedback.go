// Package feedback renders short English coaching messages for a tier.
//
// The texts are illustrative: callers that localize or narrate feedback
// should switch on score.Tier themselves.
package feedback

import (
	"fmt"

	"github.com/katalvlaran/strokematch/score"
)

// Consistency limits that pick the hint variant inside a tier.
const (
	goodDirectionHint       = 0.8
	developingDirectionHint = 0.7
)

// TooShort is shown when the captured stroke has too few points to evaluate.
const TooShort = "Stroke was too short. Try again."

// Message returns the feedback text for tier t on glyph glyphName.
// consistency is the direction consistency of the attempt; it selects the
// hint for the Good and Developing tiers.
func Message(t score.Tier, glyphName string, consistency float64) string {
	switch t {
	case score.TemplateUnavailable:
		return fmt.Sprintf("Analysis for %s is not available.", glyphName)
	case score.DirectionWarning:
		return fmt.Sprintf("⚠️ %s: Try drawing from right to left (RTL direction is essential in Arabic)", glyphName)
	case score.Excellent:
		return fmt.Sprintf("🌟 Excellent! Your %s matches the template very closely. Keep it up!", glyphName)
	case score.Good:
		hint := "Try to match the curves more precisely."
		if consistency < goodDirectionHint {
			hint = "Maintain consistent right-to-left direction."
		}
		return fmt.Sprintf("✓ Good work on %s! %s", glyphName, hint)
	case score.Developing:
		focus := ""
		if consistency < developingDirectionHint {
			focus = "proper RTL direction and "
		}
		return fmt.Sprintf("↗️ Getting there with %s. Focus on: %sfollowing the template shape more closely.", glyphName, focus)
	default:
		return fmt.Sprintf("⟳ Keep practicing %s. Tips: Start from the right, follow the template outline, and maintain smooth curves.", glyphName)
	}
}

// MessageTooShort returns TooShort.
func MessageTooShort() string {
	return TooShort
}
