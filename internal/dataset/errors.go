package dataset

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the dataset file does not exist.
var ErrFileNotFound = errors.New("dataset file not found")

// ErrUnsupportedFormat indicates a file extension or media type no decoder
// handles.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// ErrInvalidFormat indicates input that cannot be decoded as its format.
var ErrInvalidFormat = errors.New("invalid dataset")

// ErrPathNotFound indicates a JSON path that selects nothing.
var ErrPathNotFound = errors.New("json path not found")

// LoadError is returned when a dataset cannot be loaded.
type LoadError struct {
	Path   string
	Format Format
	Err    error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error loading %s dataset: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("error loading %s dataset %q: %v", e.Format, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, format Format, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}
