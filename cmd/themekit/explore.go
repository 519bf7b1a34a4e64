package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
	"github.com/alexisbeaulieu97/themekit/internal/tui/explorer"
)

func newExploreCmd(flags *rootFlags) *cobra.Command {
	var palette string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse palettes and edit colors interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			if palette != "" {
				if _, err := app.Engine.ApplyPalette(app.Ctx, palette); err != nil {
					return newCommandError("open explorer", "applying palette", err, "Run 'themekit palettes' to see the available names.")
				}
			}

			model := explorer.NewModel(app.Ctx, app.Engine, app.Store)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(app.Ctx))

			// Writes happen inside Update, so sending must not wait on the event loop.
			sub, err := tui.WatchStore(app.Store, func(msg tea.Msg) { go program.Send(msg) })
			if err != nil {
				return newCommandError("open explorer", "subscribing to theme changes", err, "Try again; this is unexpected.")
			}
			defer sub.Unsubscribe()
	app.Logger.Debug(app.Ctx, "watching style store", "program", "explorer", "store_subscribers", app.Publisher.SubscriberCount(ports.EventStoreChanged))

			if _, err := program.Run(); err != nil {
				return newCommandError("open explorer", "running the terminal UI", err, "Make sure the command runs in an interactive terminal.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&palette, "palette", "p", "", "Palette to start from")

	return cmd
}
