package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/journey"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
	"github.com/alexisbeaulieu97/themekit/internal/tui/player"
)

type journeyOptions struct {
	palette  string
	speed    float64
	headless bool
	autoplay bool
}

func newJourneyCmd(flags *rootFlags) *cobra.Command {
	opts := &journeyOptions{}

	cmd := &cobra.Command{
		Use:   "journey",
		Short: "Play the adoption journey animation",
		Long: "Play the eleven-phase adoption journey painted with the current theme.\n" +
			"With --headless the phases are printed as they are reached.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJourney(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "Palette to paint the journey with")
	cmd.Flags().Float64Var(&opts.speed, "speed", 0, "Playback speed multiplier (default: journey.speed from config)")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "Print phase transitions instead of opening the player")
	cmd.Flags().BoolVar(&opts.autoplay, "autoplay", false, "Start playing as soon as the player opens")

	return cmd
}

func runJourney(cmd *cobra.Command, flags *rootFlags, opts *journeyOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	if opts.palette != "" {
		if _, err := app.Engine.ApplyPalette(app.Ctx, opts.palette); err != nil {
			return newCommandError("play journey", fmt.Sprintf("applying palette %q", opts.palette), err, "Run 'themekit palettes' to see the available names.")
		}
	}

	speed := app.Config.Journey.Speed
	if cmd.Flags().Changed("speed") {
		if opts.speed <= 0 {
			return newCommandError("play journey", "reading --speed", fmt.Errorf("speed must be positive, got %v", opts.speed), "Pass a value such as 1 or 2.5.")
		}
		speed = opts.speed
	}

	ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.headless {
		return playHeadless(ctx, cmd.OutOrStdout(), app, speed)
	}

	options := []player.Option{player.WithSpeed(speed)}
	if opts.autoplay {
		options = append(options, player.WithAutoplay())
	}
	program := tea.NewProgram(player.NewModel(app.Store, options...), tea.WithAltScreen(), tea.WithContext(ctx))

	sub, err := tui.WatchStore(app.Store, func(msg tea.Msg) { go program.Send(msg) })
	if err != nil {
		return newCommandError("play journey", "subscribing to theme changes", err, "Try again; this is unexpected.")
	}
	defer sub.Unsubscribe()
	app.Logger.Debug(app.Ctx, "watching style store", "program", "player", "store_subscribers", app.Publisher.SubscriberCount(ports.EventStoreChanged))

	if _, err := program.Run(); err != nil {
		return newCommandError("play journey", "running the terminal UI", err, "Make sure the command runs in an interactive terminal, or pass --headless.")
	}
	return nil
}

func playHeadless(ctx context.Context, out io.Writer, app *AppContext, speed float64) error {
	seq := journey.NewSequencer(
		journey.WithSpeed(speed),
		journey.WithLogger(app.Logger),
		journey.WithPublisher(app.Publisher),
	)

	done := make(chan struct{})
	lines := make(chan string, journey.Count+1)
	sub := seq.OnPhase(func(_ context.Context, state journey.State) {
		caption := journey.CaptionFor(state.Phase)
		lines <- fmt.Sprintf("%2d/%d  %-22s %s", int(state.Phase)+1, journey.Count, state.Phase.Name(), caption.Title)
		if state.Finished() {
			close(done)
		}
	})
	defer sub.Unsubscribe()

	seq.Start(ctx)

	for {
		select {
		case line := <-lines:
			fmt.Fprintln(out, line)
		case <-done:
			for len(lines) > 0 {
				fmt.Fprintln(out, <-lines)
			}
			if panels, ok := journey.Insight(seq.State()); ok {
				for _, panel := range panels {
					fmt.Fprintf(out, "\n%s\n  %s\n", panel.Heading, panel.Body)
				}
			}
			return nil
		case <-ctx.Done():
			seq.Stop(context.Background())
			return ctx.Err()
		}
	}
}
