package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"honnef.co/go/funnel/internal/watch"
)

func WatchCommand() *cobra.Command {
	var output string
	watchCmd := &cobra.Command{
		Use:   "watch <dataset>",
		Short: "Re-render a dataset whenever it changes",
		Long:  `Render a dataset to SVG and render it again every time the dataset file is written`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			if output == "" {
				output = defaultOutput(args[0])
			}
			w, err := watch.New(watch.Config{
				Input:    args[0],
				Output:   output,
				Debounce: cfg.Watch.Debounce,
				Graph:    graphOptions(cfg),
				Dataset:  datasetOptions(cfg),
				Logger:   &log.Logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			log.Info().Str("dataset", args[0]).Str("output", output).Msg("watching dataset")
			return w.Run(ctx)
		},
	}
	watchCmd.Flags().StringVarP(&output, "output", "o", "", "path to the SVG file to write, defaults to the dataset path with an .svg extension")
	return watchCmd
}

func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}
