package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strokematch/glyph"
	"github.com/katalvlaran/strokematch/sampler"
)

func (a *app) sampleCmd() *cobra.Command {
	var query, form string
	var samples int
	cmd := &cobra.Command{
		Use:   "sample --glyph <key|char|name>",
		Short: "Print equally spaced points along a glyph's reference path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, _, f, err := a.lookup(query, form)
			if err != nil {
				return err
			}
			ref, err := f.Descriptor()
			if err != nil {
				return fmt.Errorf("glyph %s/%s: %w", key, form, err)
			}
			n := samples
			if n == 0 {
				n = a.cfg.Evaluation.MaxSamples
			}
			pts, err := sampler.Sample(ref, n)
			if err != nil {
				return err
			}
			a.logger.Debug("reference sampled", "glyph", key, "form", form, "samples", len(pts), "length", ref.Length())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(pts)
		},
	}
	cmd.Flags().StringVar(&query, "glyph", "", "glyph key (U+0628), character or name")
	cmd.Flags().StringVar(&form, "form", glyph.Isolated, "positional form")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of points; 0 uses evaluation.max_samples")
	_ = cmd.MarkFlagRequired("glyph")

	return cmd
}
