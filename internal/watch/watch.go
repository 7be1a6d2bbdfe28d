// Package watch re-renders a funnel whenever its dataset file changes.
package watch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"honnef.co/go/funnel/internal/dataset"
	"honnef.co/go/funnel/internal/metrics"
	"honnef.co/go/funnel/view"
)

// Config configures a [Watcher].
type Config struct {
	// Input is the dataset file to watch.
	Input string
	// Output is where the SVG document is written.
	Output string
	// Debounce is how long to wait after the last change before reloading.
	Debounce time.Duration
	// Graph holds the graph options. Data, labels and colours come from
	// Input.
	Graph   view.Options
	Dataset dataset.Options
	// Metrics may be nil.
	Metrics *metrics.Registry
	Logger  *zerolog.Logger
}

type Watcher struct {
	input    string
	output   string
	debounce time.Duration
	dsOpts   dataset.Options
	graph    *view.Graph
	metrics  *metrics.Registry
	log      zerolog.Logger
}

// New loads the dataset, renders it once and returns a Watcher ready to
// [Watcher.Run].
func New(cfg Config) (*Watcher, error) {
	input, err := filepath.Abs(cfg.Input)
	if err != nil {
		return nil, err
	}
	if cfg.Output == "" {
		return nil, errors.New("watch: no output file")
	}
	w := &Watcher{
		input:    input,
		output:   cfg.Output,
		debounce: cfg.Debounce,
		dsOpts:   cfg.Dataset,
		metrics:  cfg.Metrics,
		log:      zerolog.Nop(),
	}
	if cfg.Logger != nil {
		w.log = *cfg.Logger
	}

	ds, err := dataset.Load(input, cfg.Dataset)
	w.metrics.ObserveReload(err)
	if err != nil {
		return nil, err
	}
	opts := ds.Options(cfg.Graph)
	if opts.Logger == nil {
		opts.Logger = &w.log
	}
	w.graph = view.New(opts)
	if err := w.render(); err != nil {
		return nil, err
	}
	return w, nil
}

// Graph returns the graph kept in sync with the dataset file.
func (w *Watcher) Graph() *view.Graph {
	return w.graph
}

// Reload reads the dataset file again and re-renders the output when the
// graph changed. It reports whether the output was written.
func (w *Watcher) Reload() (bool, error) {
	ds, err := dataset.Load(w.input, w.dsOpts)
	w.metrics.ObserveReload(err)
	if err != nil {
		return false, err
	}
	if !w.graph.UpdateData(ds.Update(), false) {
		w.log.Debug().Str("file", w.input).Msg("dataset unchanged")
		return false, nil
	}
	if err := w.render(); err != nil {
		return false, err
	}
	return true, nil
}

func (w *Watcher) render() error {
	start := time.Now()
	var buf bytes.Buffer
	err := w.graph.RenderSVG(&buf)
	if err == nil {
		err = writeFileAtomic(w.output, buf.Bytes())
	}
	w.metrics.ObserveRender("watch", w.graph.GraphType().String(), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", w.output, err)
	}
	w.log.Info().Str("file", w.output).Int("bytes", buf.Len()).Msg("funnel written")
	return nil
}

func writeFileAtomic(path string, b []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Run watches the directory of the dataset file until ctx is done. Writes
// to the file are coalesced for the debounce duration before reloading.
// Reload errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer fw.Close()
	// Editors replace files by renaming, which drops watches on the file
	// itself.
	if err := fw.Add(filepath.Dir(w.input)); err != nil {
		return fmt.Errorf("failed watching %s: %w", w.input, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.input || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Str("file", w.input).Msg("file watcher error")
		case <-fire:
			fire = nil
			if _, err := w.Reload(); err != nil {
				w.log.Error().Err(err).Str("file", w.input).Msg("error reloading dataset")
			}
		}
	}
}
