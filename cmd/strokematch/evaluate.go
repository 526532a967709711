package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strokematch/direction"
	"github.com/katalvlaran/strokematch/evaluate"
	"github.com/katalvlaran/strokematch/geom"
	"github.com/katalvlaran/strokematch/glyph"
	"github.com/katalvlaran/strokematch/score"
)

var errEmptyStroke = errors.New("stroke file holds no points")

// evaluation is the printed form of one result.
type evaluation struct {
	File      string               `json:"file"`
	Glyph     string               `json:"glyph"`
	Char      string               `json:"char"`
	Name      string               `json:"name"`
	Form      string               `json:"form"`
	Score     float64              `json:"score"`
	Tier      score.Tier           `json:"tier"`
	Stars     int                  `json:"stars"`
	Points    int                  `json:"points"`
	Direction direction.Assessment `json:"direction"`
	Cost      *float64             `json:"cost,omitempty"`
	PathLen   int                  `json:"path_len"`
	Samples   int                  `json:"samples"`
	TooShort  bool                 `json:"too_short,omitempty"`
	Message   string               `json:"message"`
}

func (a *app) evaluateCmd() *cobra.Command {
	var query, form string
	var samples int
	cmd := &cobra.Command{
		Use:   "evaluate --glyph <key|char|name> <stroke.json>...",
		Short: "Score one or more traced strokes against a glyph",
		Long: `Score traced strokes against a reference glyph form.

Each file holds a JSON array of points ({"x":..,"y":..,"t":..}); "-" reads
standard input. Several files are evaluated concurrently and printed as a
JSON array in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, g, f, err := a.lookup(query, form)
			if err != nil {
				return err
			}
			ref, err := f.Descriptor()
			if err != nil {
				return fmt.Errorf("glyph %s/%s: %w", key, form, err)
			}

			reqs := make([]evaluate.Request, len(args))
			for i, file := range args {
				s, err := readStroke(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				reqs[i] = evaluate.Request{Stroke: s, Reference: ref, Samples: samples}
			}
			results, err := a.evaluator().EvaluateBatch(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			out := make([]evaluation, len(results))
			for i, r := range results {
				out[i] = present(args[i], key, g, form, r)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if len(out) == 1 {
				return enc.Encode(out[0])
			}
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&query, "glyph", "", "glyph key (U+0628), character or name")
	cmd.Flags().StringVar(&form, "form", glyph.Isolated, "positional form")
	cmd.Flags().IntVar(&samples, "samples", 0, "reference samples; 0 matches the stroke length")
	_ = cmd.MarkFlagRequired("glyph")

	return cmd
}

func present(file, key string, g glyph.Glyph, form string, r evaluate.Result) evaluation {
	e := evaluation{
		File:      file,
		Glyph:     key,
		Char:      g.Char,
		Name:      g.Name,
		Form:      form,
		Score:     r.Score,
		Tier:      r.Tier,
		Stars:     r.Stars,
		Points:    r.Points,
		Direction: r.Direction,
		PathLen:   r.PathLen,
		Samples:   r.Samples,
		TooShort:  r.TooShort,
		Message:   r.Feedback(g.Name),
	}
	if r.PathLen > 0 && !math.IsInf(r.Cost, 0) && !math.IsNaN(r.Cost) {
		c := r.Cost
		e.Cost = &c
	}
	return e
}

// readStroke decodes a JSON point array from file, or from stdin for "-".
func readStroke(stdin io.Reader, file string) (geom.Stroke, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open stroke: %w", err)
		}
		defer f.Close()
		r = f
	}

	var s geom.Stroke
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode stroke %q: %w", file, err)
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("%s: %w", file, errEmptyStroke)
	}
	return s, nil
}
