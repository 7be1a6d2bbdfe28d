package dataset

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Format is the encoding of a dataset file.
type Format int

const (
	JSON Format = iota
	YAML
	TOML
	XLSX
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case XLSX:
		return "xlsx"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MediaType returns the MIME type of the format.
func (f Format) MediaType() string {
	switch f {
	case YAML:
		return "application/yaml"
	case TOML:
		return "application/toml"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".xlsx":
		return XLSX, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// FormatFromMediaType picks the format from a Content-Type header value. An
// empty value selects JSON.
func FormatFromMediaType(contentType string) (Format, error) {
	if contentType == "" {
		return JSON, nil
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return JSON, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	switch mt {
	case "application/json", "text/json":
		return JSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return YAML, nil
	case "application/toml":
		return TOML, nil
	case XLSX.MediaType():
		return XLSX, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnsupportedFormat, mt)
	}
}
