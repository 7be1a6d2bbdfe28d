// Package server serves funnel renders over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/funnel/internal/dataset"
	"honnef.co/go/funnel/internal/metrics"
	"honnef.co/go/funnel/view"
)

const (
	defaultMaxBodySize     = 10 << 20
	defaultShutdownTimeout = 5 * time.Second
)

// Config configures a [Server].
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string
	// Defaults are the graph options of renders, before query parameters
	// are applied. Data and labels are ignored.
	Defaults view.Options
	// Dataset holds the default decoding options of request bodies.
	Dataset dataset.Options
	// Metrics records renders and requests. It may be nil.
	Metrics *metrics.Registry
	// Gatherer serves /metrics. It defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// MaxBodySize limits request bodies. It defaults to 10 MiB.
	MaxBodySize int64
	// ShutdownTimeout bounds graceful shutdown. It defaults to 5 seconds.
	ShutdownTimeout time.Duration
	Logger          *zerolog.Logger
}

type Server struct {
	addr            string
	defaults        view.Options
	datasetOptions  dataset.Options
	metrics         *metrics.Registry
	gatherer        prometheus.Gatherer
	maxBodySize     int64
	shutdownTimeout time.Duration
	log             zerolog.Logger
}

func New(cfg Config) *Server {
	s := &Server{
		addr:            cfg.Addr,
		defaults:        cfg.Defaults,
		datasetOptions:  cfg.Dataset,
		metrics:         cfg.Metrics,
		gatherer:        cfg.Gatherer,
		maxBodySize:     cfg.MaxBodySize,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             zerolog.Nop(),
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.maxBodySize <= 0 {
		s.maxBodySize = defaultMaxBodySize
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	s.defaults.Data = nil
	s.defaults.Labels = nil
	s.defaults.SubLabels = nil
	return s
}

// Handler returns the HTTP handler of all endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /render", renderHandler{s})
	mux.HandleFunc("GET /healthz", HealthHandler)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	middlewares := []alice.Constructor{LogRequest(s.log), Instrument(s.metrics, mux)}
	return alice.New(middlewares...).Then(mux)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("serving funnel renders")
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
