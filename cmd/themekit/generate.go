package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type generateOptions struct {
	palette string
	format  string
	colors  map[theme.Slot]*string
}

var slotFlags = map[theme.Slot]string{
	theme.SlotPrimary:    "primary",
	theme.SlotSecondary:  "secondary",
	theme.SlotAccent:     "accent",
	theme.SlotAccentSoft: "accent-soft",
	theme.SlotBackground: "background",
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{colors: make(map[theme.Slot]*string, len(theme.Slots))}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Apply a palette or custom colors and print the resulting theme",
		Long: "Apply a catalog palette, or override individual base colors, then print every\n" +
			"theme variable read back from the style store.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "Palette to apply (default: the configured default palette)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(render.FormatCSS), "Output format: css, json, yaml or swatch")
	for _, slot := range theme.Slots {
		opts.colors[slot] = cmd.Flags().String(slotFlags[slot], "", fmt.Sprintf("Override the %s base color", slotFlags[slot]))
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, opts *generateOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("generate theme", "reading --format", err, "Use one of css, json, yaml or swatch.")
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	name := opts.palette
	if name == "" {
		name = app.Config.DefaultPalette
	}

	base, err := app.Catalog.Get(name)
	if err != nil {
		return newCommandError("generate theme", fmt.Sprintf("looking up palette %q", name), err, "Run 'themekit palettes' to see the available names.")
	}

	overridden := false
	for _, slot := range theme.Slots {
		value := *opts.colors[slot]
		if !cmd.Flags().Changed(slotFlags[slot]) {
			continue
		}
		base, err = base.With(slot, value)
		if err != nil {
			return newCommandError("generate theme", "applying color overrides", err, "Pass colors as #rgb or #rrggbb.")
		}
		overridden = true
	}

	if overridden {
		_, err = app.Engine.ApplyColors(app.Ctx, base)
	} else {
		_, err = app.Engine.ApplyPalette(app.Ctx, name)
	}
	if err != nil {
		return newCommandError("generate theme", "applying colors", err, "Pass colors as #rgb or #rrggbb.")
	}

	return render.Vars(cmd.OutOrStdout(), format, app.Store.Snapshot())
}
