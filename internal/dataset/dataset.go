// Package dataset loads funnel data, labels and colours from JSON, YAML,
// TOML and xlsx files.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"honnef.co/go/funnel"
	"honnef.co/go/funnel/view"
)

// Document is the decoded form of a JSON, YAML or TOML dataset. Values is a
// flat list for simple data or a list of lists for layered data. Each entry
// of Colors is a colour string or a list of colour strings forming a
// gradient.
type Document struct {
	Labels    []string `json:"labels" yaml:"labels" toml:"labels"`
	SubLabels []string `json:"sub_labels" yaml:"sub_labels" toml:"sub_labels"`
	Colors    []any    `json:"colors" yaml:"colors" toml:"colors"`
	Values    any      `json:"values" yaml:"values" toml:"values"`
}

// Options control decoding.
type Options struct {
	// JSONPath is a gjson path selecting the dataset object inside a larger
	// JSON document.
	JSONPath string
	// Sheet is the xlsx sheet to read. The first sheet is used when empty.
	Sheet string
}

// Dataset is a loaded funnel description.
type Dataset struct {
	Data      funnel.Data
	Labels    []string
	SubLabels []string
	// Colors is empty when the dataset specifies no colours.
	Colors []funnel.Fill
}

// Load reads and decodes the dataset at path. The format is picked from the
// file extension.
func Load(path string, opts Options) (*Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, NewLoadError(path, format, err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, NewLoadError(path, format, err)
	}
	ds, err := decode(b, format, opts)
	if err != nil {
		return nil, NewLoadError(path, format, err)
	}
	return ds, nil
}

// Decode decodes a dataset encoded as format.
func Decode(b []byte, format Format, opts Options) (*Dataset, error) {
	ds, err := decode(b, format, opts)
	if err != nil {
		return nil, NewLoadError("", format, err)
	}
	return ds, nil
}

func decode(b []byte, format Format, opts Options) (*Dataset, error) {
	var doc Document
	switch format {
	case JSON:
		if !gjson.ValidBytes(b) {
			return nil, fmt.Errorf("%w: malformed json", ErrInvalidFormat)
		}
		if opts.JSONPath != "" {
			res := gjson.GetBytes(b, opts.JSONPath)
			if !res.Exists() {
				return nil, fmt.Errorf("%w: %q", ErrPathNotFound, opts.JSONPath)
			}
			b = []byte(res.Raw)
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case YAML:
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case TOML:
		if err := toml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case XLSX:
		return decodeSheet(bytes.NewReader(b), opts.Sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return doc.Dataset()
}

// Dataset converts the document into a [Dataset].
func (doc Document) Dataset() (*Dataset, error) {
	data, err := funnel.DataFromValues(doc.Values)
	if err != nil {
		return nil, err
	}
	colors, err := fillsFromValues(doc.Colors)
	if err != nil {
		return nil, err
	}
	return &Dataset{
		Data:      data,
		Labels:    doc.Labels,
		SubLabels: doc.SubLabels,
		Colors:    colors,
	}, nil
}

func fillsFromValues(values []any) ([]funnel.Fill, error) {
	if len(values) == 0 {
		return nil, nil
	}
	fills := make([]funnel.Fill, len(values))
	for i, v := range values {
		switch c := v.(type) {
		case string:
			fills[i] = funnel.Solid(c)
		case []string:
			fills[i] = funnel.Fill(c)
		case []any:
			f := make(funnel.Fill, len(c))
			for j, s := range c {
				str, ok := s.(string)
				if !ok {
					return nil, fmt.Errorf("%w: colour %d.%d is %T, not a string", ErrInvalidFormat, i, j, s)
				}
				f[j] = str
			}
			fills[i] = f
		default:
			return nil, fmt.Errorf("%w: colour %d is %T", ErrInvalidFormat, i, v)
		}
		if len(fills[i]) == 0 {
			return nil, fmt.Errorf("%w: colour %d is empty", ErrInvalidFormat, i)
		}
	}
	return fills, nil
}

// Options returns base with the dataset's data, labels and colours.
func (ds *Dataset) Options(base view.Options) view.Options {
	base.Data = ds.Data
	base.Labels = ds.Labels
	base.SubLabels = ds.SubLabels
	base.Colors = ds.Colors
	return base
}

// Update returns the data update replacing a graph's contents with the
// dataset's.
func (ds *Dataset) Update() view.Update {
	return view.Update{
		Values:    ds.Data,
		Labels:    ds.Labels,
		SubLabels: ds.SubLabels,
		Colors:    ds.Colors,
	}
}
