package cli

import (
	"github.com/spf13/cobra"

	"honnef.co/go/funnel/internal/config"
)

// Root returns the funnel command with all subcommands attached.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "funnel",
		Short:         "Funnel graph renderer",
		Long:          `Render funnel graphs from JSON, YAML, TOML and xlsx datasets to SVG`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file")
	config.DefineFlags(rootCmd)

	rootCmd.AddCommand(
		RenderCommand(),
		ServeCommand(),
		WatchCommand(),
		DefaultConfigCommand(),
		Version(),
	)
	return rootCmd
}
