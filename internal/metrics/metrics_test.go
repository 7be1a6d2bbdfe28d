package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(Config{Registerer: reg})
	require.NoError(t, err)

	m.ObserveRender("http", "layered", 3*time.Millisecond, nil)
	m.ObserveRender("http", "layered", time.Millisecond, nil)
	m.ObserveRender("cli", "normal", time.Millisecond, nil)
	m.ObserveRender("http", "", 0, errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("http", "layered")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.rendersTotal.WithLabelValues("cli", "normal")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.renderErrorsTotal.WithLabelValues("http")))
	require.Equal(t, 2, testutil.CollectAndCount(m.renderDuration))
}

func TestObserveReloadAndHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(Config{Registerer: reg, Namespace: "test", ConstLabels: map[string]string{"env": "ci"}})
	require.NoError(t, err)

	m.ObserveReload(nil)
	m.ObserveReload(errors.New("bad file"))
	m.ObserveReload(nil)
	m.ObserveHTTPRequest("/render", "POST", 200)

	require.Equal(t, 2.0, testutil.ToFloat64(m.reloadsTotal.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.reloadsTotal.WithLabelValues("error")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/render", "POST", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "test_watch_reloads_total")
	require.Contains(t, names, "test_http_requests_total")
}

func TestNewReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m1, err := New(Config{Registerer: reg})
	require.NoError(t, err)
	m2, err := New(Config{Registerer: reg})
	require.NoError(t, err)

	m1.ObserveReload(nil)
	m2.ObserveReload(nil)
	require.Equal(t, 2.0, testutil.ToFloat64(m2.reloadsTotal.WithLabelValues("ok")))
}

func TestNilRegistry(t *testing.T) {
	var m *Registry
	require.NotPanics(t, func() {
		m.ObserveRender("cli", "normal", time.Second, nil)
		m.ObserveReload(nil)
		m.ObserveHTTPRequest("/", "GET", 404)
	})
}
