package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"honnef.co/go/funnel/internal/metrics"
)

// unmatchedRoute labels requests that match no route.
const unmatchedRoute = "unmatched"

// LogRequest returns a middleware logging details of every request to l.
func LogRequest(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return logRequest(l, h)
	}
}

func logRequest(l zerolog.Logger, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel {
			start := time.Now()
			lrw := &statusResponseWriter{ResponseWriter: w}
			h.ServeHTTP(lrw, r)
			addr := r.Header.Get("X-Real-IP")
			if addr == "" {
				addr = r.Header.Get("X-Forwarded-For")
				if addr == "" {
					addr = r.RemoteAddr
				}
			}
			l.Debug().Str("method", r.Method).Int("status", lrw.Status()).Str("path", r.URL.Path).Str("addr", addr).Str("duration", time.Since(start).String()).Msg("http request")
		} else {
			h.ServeHTTP(w, r)
		}
	})
}

// Instrument returns a middleware counting requests in m. Requests are
// labelled with the path of the mux route they match, so arbitrary request
// paths cannot create new series.
func Instrument(m *metrics.Registry, mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := routeLabel(mux, r)
			rw := &statusResponseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r)
			m.ObserveHTTPRequest(route, r.Method, rw.Status())
		})
	}
}

// routeLabel returns the path of the pattern r is routed to, without its
// method.
func routeLabel(mux *http.ServeMux, r *http.Request) string {
	_, pattern := mux.Handler(r)
	if pattern == "" {
		return unmatchedRoute
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

// WriteHeader allows us to save status code.
func (rw *statusResponseWriter) WriteHeader(status int) {
	if rw.status == 0 {
		rw.status = status
	}
	rw.ResponseWriter.WriteHeader(status)
}

// Status returns the saved status code.
func (rw *statusResponseWriter) Status() int {
	if rw.status == 0 {
		return http.StatusOK
	}
	return rw.status
}

func (rw *statusResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
