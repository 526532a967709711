package score

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Tier -output=tier_string.go

// Tier is a coarse feedback category.
type Tier int

const (
	NeedsPractice Tier = iota
	Developing
	Good
	Excellent
	// DirectionWarning is reported when the stroke was mostly drawn
	// left-to-right, regardless of its shape score.
	DirectionWarning
	// TemplateUnavailable is reported when the reference path has no length.
	TemplateUnavailable
)

// ErrUnknownTier is returned by UnmarshalText for an unrecognized name.
var ErrUnknownTier = errors.New("score: unknown tier")

var tierText = [...]string{
	NeedsPractice:       "needs_practice",
	Developing:          "developing",
	Good:                "good",
	Excellent:           "excellent",
	DirectionWarning:    "direction_warning",
	TemplateUnavailable: "template_unavailable",
}

// Tiers returns every tier in declaration order.
func Tiers() []Tier {
	return []Tier{NeedsPractice, Developing, Good, Excellent, DirectionWarning, TemplateUnavailable}
}

// Valid reports whether t is one of the declared tiers.
func (t Tier) Valid() bool {
	return t >= NeedsPractice && t <= TemplateUnavailable
}

// Text returns the snake_case name used in JSON, YAML and CLI output.
func (t Tier) Text() string {
	if !t.Valid() {
		return t.String()
	}

	return tierText[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}

	return []byte(tierText[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both the snake_case and
// the Go constant names are accepted.
func (t *Tier) UnmarshalText(b []byte) error {
	s := string(b)
	for _, c := range Tiers() {
		if s == tierText[c] || s == c.String() {
			*t = c
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownTier, s)
}
