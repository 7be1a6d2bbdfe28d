package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"honnef.co/go/funnel"
	"honnef.co/go/funnel/internal/dataset"
	"honnef.co/go/funnel/view"
)

const svgContentType = "image/svg+xml"

// HealthHandler answers health checks.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{}`))
}

type renderHandler struct {
	s *Server
}

// ServeHTTP renders the dataset in the request body. Query parameters
// override the server's default graph options.
func (h renderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	svg, graphType, status, err := h.render(w, r)
	h.s.metrics.ObserveRender("http", graphType, time.Since(start), err)
	if err != nil {
		if status >= http.StatusInternalServerError {
			h.s.log.Error().Err(err).Str("path", r.URL.Path).Msg("error rendering funnel")
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(svg)))
	_, _ = w.Write(svg)
}

func (h renderHandler) render(w http.ResponseWriter, r *http.Request) ([]byte, string, int, error) {
	format, err := dataset.FormatFromMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", http.StatusUnsupportedMediaType, err
	}
	opts, dsOpts, err := h.s.requestOptions(r.URL.Query())
	if err != nil {
		return nil, "", http.StatusBadRequest, err
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.s.maxBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, "", http.StatusRequestEntityTooLarge, err
		}
		return nil, "", http.StatusBadRequest, err
	}
	ds, err := dataset.Decode(body, format, dsOpts)
	if err != nil {
		return nil, "", http.StatusBadRequest, err
	}

	g := view.New(ds.Options(opts))
	var buf bytes.Buffer
	if err := g.RenderSVG(&buf); err != nil {
		if errors.Is(err, view.ErrNoDimensions) || errors.Is(err, view.ErrOutOfBounds) {
			return nil, "", http.StatusBadRequest, err
		}
		return nil, "", http.StatusInternalServerError, err
	}
	return buf.Bytes(), g.GraphType().String(), http.StatusOK, nil
}

func (s *Server) requestOptions(q url.Values) (view.Options, dataset.Options, error) {
	opts := s.defaults
	opts.Logger = &s.log
	dsOpts := s.datasetOptions

	for key, dst := range map[string]*float64{"width": &opts.Width, "height": &opts.Height} {
		if v := q.Get(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
				return opts, dsOpts, fmt.Errorf("invalid %s %q", key, v)
			}
			*dst = f
		}
	}
	for key, dst := range map[string]*funnel.Orientation{"direction": &opts.Direction, "gradient_direction": &opts.GradientDirection} {
		if v := q.Get(key); v != "" {
			o, err := funnel.ParseOrientation(v)
			if err != nil {
				return opts, dsOpts, err
			}
			*dst = o
		}
	}
	if v := q.Get("display_percent"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, dsOpts, fmt.Errorf("invalid display_percent %q", v)
		}
		opts.DisplayPercent = b
	}
	if v := q.Get("sub_label_value"); v != "" {
		sv, err := view.ParseSubLabelValue(v)
		if err != nil {
			return opts, dsOpts, err
		}
		opts.SubLabelValue = sv
	}
	if v := q.Get("path"); v != "" {
		dsOpts.JSONPath = v
	}
	if v := q.Get("sheet"); v != "" {
		dsOpts.Sheet = v
	}
	return opts, dsOpts, nil
}
