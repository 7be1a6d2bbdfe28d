package funnel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
)

// ErrInvalidValue is returned by [DataFromValues] for values that are not
// numbers, sequences of numbers or sequences of sequences of numbers.
var ErrInvalidValue = errors.New("invalid funnel value")

// Data is the data of a funnel chart. It is implemented by exactly two
// types, [Simple] and [Layered].
type Data interface {
	// Len returns the number of stages.
	Len() int
	// Totals returns the total value of every stage.
	Totals() []float64

	data()
}

// Simple is one-dimensional funnel data with one value per stage.
type Simple []float64

// Layered is two-dimensional funnel data. Every stage is a row of
// sub-segment values; rows may have different lengths.
type Layered [][]float64

var (
	_ Data = Simple(nil)
	_ Data = Layered(nil)
)

func (s Simple) Len() int { return len(s) }

func (s Simple) Totals() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = valueOrZero(v)
	}
	return out
}

func (Simple) data() {}

func (l Layered) Len() int { return len(l) }

func (l Layered) Totals() []float64 { return RowSums(l) }

func (Layered) data() {}

// valueOrZero treats NaN, which is how missing values end up in a float
// slice, as zero.
func valueOrZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func stageCount(d Data) int {
	if d == nil {
		return 0
	}
	return d.Len()
}

func totals(d Data) []float64 {
	if d == nil {
		return nil
	}
	return d.Totals()
}

// IsLayered reports whether values, typically decoded from JSON, YAML or
// TOML, has the shape of layered data: a non-empty sequence whose first
// element is itself a sequence. Only the first element is inspected. It never
// panics, whatever the shape of values.
func IsLayered(values any) bool {
	switch v := values.(type) {
	case Layered:
		return len(v) > 0
	case Simple:
		return false
	}
	rv := reflect.ValueOf(values)
	if !isSequence(rv) || rv.Len() == 0 {
		return false
	}
	first := rv.Index(0)
	for first.Kind() == reflect.Interface || first.Kind() == reflect.Pointer {
		if first.IsNil() {
			return false
		}
		first = first.Elem()
	}
	return isSequence(first)
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// Byte slices are strings as far as decoders are concerned.
		return rv.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// DataFromValues converts the values field of a decoded funnel document into
// [Simple] or [Layered] data. The variant is decided once, with the same rule
// as [IsLayered]. Nil entries are treated as zero.
func DataFromValues(values any) (Data, error) {
	switch v := values.(type) {
	case nil:
		return Simple(nil), nil
	case Simple:
		return slices.Clone(v), nil
	case Layered:
		return cloneLayered(v), nil
	case []float64:
		return Simple(slices.Clone(v)), nil
	case [][]float64:
		return cloneLayered(Layered(v)), nil
	}

	rv := reflect.ValueOf(values)
	if !isSequence(rv) {
		return nil, fmt.Errorf("%w: values must be a sequence, got %T", ErrInvalidValue, values)
	}
	if !IsLayered(values) {
		row, err := toRow(rv)
		if err != nil {
			return nil, err
		}
		return Simple(row), nil
	}
	out := make(Layered, rv.Len())
	for i := range rv.Len() {
		el := rv.Index(i)
		for el.Kind() == reflect.Interface || el.Kind() == reflect.Pointer {
			if el.IsNil() {
				break
			}
			el = el.Elem()
		}
		if el.Kind() == reflect.Interface || el.Kind() == reflect.Pointer {
			// A nil row is an empty stage.
			continue
		}
		if !isSequence(el) {
			return nil, fmt.Errorf("%w: stage %d is not a sequence", ErrInvalidValue, i)
		}
		row, err := toRow(el)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		out[i] = row
	}
	return out, nil
}

func cloneLayered(l Layered) Layered {
	out := make(Layered, len(l))
	for i, row := range l {
		out[i] = slices.Clone(row)
	}
	return out
}

func toRow(rv reflect.Value) ([]float64, error) {
	row := make([]float64, rv.Len())
	for i := range rv.Len() {
		f, err := toFloat(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		row[i] = f
	}
	return row, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidValue, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %v (%T)", ErrInvalidValue, v, v)
	}
}

// ValuesEqual reports whether a and b are the same variant with identical
// values. Nil data equals empty simple data.
func ValuesEqual(a, b Data) bool {
	if a == nil {
		a = Simple(nil)
	}
	if b == nil {
		b = Simple(nil)
	}
	switch a := a.(type) {
	case Simple:
		b, ok := b.(Simple)
		return ok && slices.Equal(a, b)
	case Layered:
		b, ok := b.(Layered)
		return ok && slices.EqualFunc(a, b, func(x, y []float64) bool {
			return slices.Equal(x, y)
		})
	default:
		return false
	}
}
