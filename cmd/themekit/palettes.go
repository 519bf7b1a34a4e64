package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/catalog"
	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tui/explorer"
)

type palettesOptions struct {
	jsonOutput bool
	swatches   bool
}

func newPalettesCmd(flags *rootFlags) *cobra.Command {
	opts := &palettesOptions{}

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the palettes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderPalettesJSON(cmd, app.Catalog.Palettes())
			}
			return renderPalettesTable(cmd, app.Catalog.Palettes(), opts.swatches || isTerminal(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.swatches, "swatches", false, "Show color chips even when output is not a terminal")

	return cmd
}

type paletteJSON struct {
	Name        string             `json:"name"`
	Display     string             `json:"display"`
	Description string             `json:"description,omitempty"`
	Colors      theme.BaseColorSet `json:"colors"`
}

func renderPalettesJSON(cmd *cobra.Command, palettes []catalog.Palette) error {
	out := make([]paletteJSON, 0, len(palettes))
	for _, p := range palettes {
		out = append(out, paletteJSON{
			Name:        p.Name,
			Display:     explorer.DisplayName(p.Name),
			Description: p.Description,
			Colors:      p.Colors,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func renderPalettesTable(cmd *cobra.Command, palettes []catalog.Palette, chips bool) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY\tCOLORS\tDESCRIPTION")
	for _, p := range palettes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, explorer.DisplayName(p.Name), paletteColors(p.Colors, chips), p.Description)
	}
	return w.Flush()
}

func paletteColors(base theme.BaseColorSet, chips bool) string {
	parts := make([]string, 0, len(theme.Slots))
	for _, slot := range theme.Slots {
		value, _ := base.Get(slot)
		if chips {
			parts = append(parts, render.Chip(value))
			continue
		}
		parts = append(parts, value)
	}
	if chips {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, " ")
}
