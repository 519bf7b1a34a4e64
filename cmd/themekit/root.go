package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "THEMEKIT"

type rootFlags struct {
	configPath  string
	catalogPath string
	logLevel    string
	verbose     bool

	settings *viper.Viper
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{settings: viper.New()}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit derives brand themes from a few base colors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a themekit.yaml configuration file")
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Path to a YAML or TOML palette catalog (default: built-in palettes)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	v := flags.settings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.PersistentFlags())

	cmd.AddCommand(newPalettesCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newObserveCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newJourneyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
