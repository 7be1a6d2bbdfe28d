package cli

import (
	"bytes"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"honnef.co/go/funnel/internal/dataset"
	"honnef.co/go/funnel/view"
)

func RenderCommand() *cobra.Command {
	var output string
	renderCmd := &cobra.Command{
		Use:   "render <dataset>",
		Short: "Render a dataset to SVG",
		Long:  `Render a JSON, YAML, TOML or xlsx dataset to an SVG document`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			start := time.Now()
			ds, err := dataset.Load(args[0], datasetOptions(cfg))
			if err != nil {
				return err
			}
			g := view.New(ds.Options(graphOptions(cfg)))
			var buf bytes.Buffer
			if err := g.RenderSVG(&buf); err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return err
			}
			log.Info().
				Str("dataset", args[0]).
				Str("output", output).
				Stringer("graph_type", g.GraphType()).
				Str("duration", time.Since(start).String()).
				Msg("funnel rendered")
			return nil
		},
	}
	renderCmd.Flags().StringVarP(&output, "output", "o", "-", "path to the SVG file to write, - for STDOUT")
	return renderCmd
}
