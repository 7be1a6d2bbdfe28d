package cli

import (
	"net"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"honnef.co/go/funnel/internal/build"
	"honnef.co/go/funnel/internal/metrics"
	"honnef.co/go/funnel/internal/server"
)

func ServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve funnel renders over HTTP",
		Long:  `Start an HTTP server rendering datasets posted to /render`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			_, _ = maxprocs.Set(maxprocs.Logger(func(s string, i ...any) {
				log.Info().Msgf(strings.ToLower(s), i...)
			}))

			m, err := metrics.New(metrics.Config{})
			if err != nil {
				return err
			}
			addr := net.JoinHostPort(cfg.HTTP.Address, strconv.Itoa(cfg.HTTP.Port))
			srv := server.New(server.Config{
				Addr:     addr,
				Defaults: graphOptions(cfg),
				Dataset:  datasetOptions(cfg),
				Metrics:  m,
				Logger:   &log.Logger,
			})

			log.Info().
				Str("version", build.Version).
				Str("runtime", runtime.Version()).
				Int("pid", os.Getpid()).
				Int("gomaxprocs", runtime.GOMAXPROCS(0)).
				Str("addr", addr).
				Msg("starting funnel server")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
}

