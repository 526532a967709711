package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) glyphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glyphs",
		Short: "List the glyphs and forms in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if a.db.Len() == 0 {
				_, err := fmt.Fprintln(w, "No glyphs loaded")
				return err
			}
			for _, k := range a.db.Keys() {
				g, _ := a.db.Glyph(k)
				if _, err := fmt.Fprintf(w, "%-8s %s  %-8s %s\n", k, g.Char, g.Name, strings.Join(g.FormNames(), ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
