package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Show how the generated CSS changes between two palettes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			generator := theme.NewGenerator(app.Config.Variants)

			from, err := paletteCSS(app.Catalog.Get, generator, args[0])
			if err != nil {
				return newCommandError("diff palettes", fmt.Sprintf("generating %q", args[0]), err, "Run 'themekit palettes' to see the available names.")
			}
			to, err := paletteCSS(app.Catalog.Get, generator, args[1])
			if err != nil {
				return newCommandError("diff palettes", fmt.Sprintf("generating %q", args[1]), err, "Run 'themekit palettes' to see the available names.")
			}

			out := cmd.OutOrStdout()
			text, stats := diff.Unified(from, to, args[0], args[1])
			if !stats.Changed() {
				fmt.Fprintf(out, "%s and %s generate identical themes\n", args[0], args[1])
				return nil
			}
			fmt.Fprint(out, text)
			fmt.Fprintf(out, "%d added, %d removed\n", stats.Added, stats.Removed)
			return nil
		},
	}

	return cmd
}

func paletteCSS(lookup func(string) (theme.BaseColorSet, error), generator *theme.Generator, name string) ([]byte, error) {
	base, err := lookup(name)
	if err != nil {
		return nil, err
	}
	t, err := generator.Generate(base)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.CSS(&buf, t.Vars()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
