package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

type observeOptions struct {
	palette    string
	jsonOutput bool
}

func newObserveCmd(flags *rootFlags) *cobra.Command {
	opts := &observeOptions{}

	cmd := &cobra.Command{
		Use:   "observe [variable...]",
		Short: "Read theme variables back from the style store",
		Long: "Apply a palette and print the requested variables as a consumer would read\n" +
			"them. With no arguments the well-known variables are shown. Unknown\n" +
			"variables are left out.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			if opts.palette != "" {
				if _, err := app.Engine.ApplyPalette(app.Ctx, opts.palette); err != nil {
					return newCommandError("observe theme", fmt.Sprintf("applying palette %q", opts.palette), err, "Run 'themekit palettes' to see the available names.")
				}
			}

			names := args
			if len(names) == 0 {
				names = theme.KnownVarNames
			}
			values := app.Store.Observe(names)

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(values)
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				if value, ok := values[name]; ok {
					fmt.Fprintf(out, "%s: %s\n", name, value)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "Palette to apply before reading")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
