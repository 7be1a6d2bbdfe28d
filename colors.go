package funnel

import (
	"math"
	"strings"
)

// DefaultColors is the palette used when no colours are given.
var DefaultColors = []string{"#003f5c", "#2f4b7c", "#665191", "#a05195", "#d45087", "#f95d6a", "#ff7c43", "#ffa600"}

// DefaultColorsFor picks sets colours from [DefaultColors], spread evenly over
// the palette. A single set gets two colours, meant to be used as the stops
// of one gradient.
func DefaultColorsFor(sets int) []string {
	if sets == 1 {
		return []string{DefaultColors[0], DefaultColors[3]}
	}
	n := len(DefaultColors)
	colors := make([]string, 0, max(sets, 0))
	for i := 0; i < sets; i++ {
		idx := int(math.Round(float64(n) / float64(min(sets, n)) * float64(i%n)))
		colors = append(colors, DefaultColors[idx%n])
	}
	return colors
}

// Fill is the paint of one funnel segment: a single colour, or the stops of a
// linear gradient when it holds more than one.
type Fill []string

// Solid returns a fill of a single colour.
func Solid(color string) Fill {
	return Fill{color}
}

// IsGradient reports whether f has more than one colour.
func (f Fill) IsGradient() bool {
	return len(f) > 1
}

// Color returns the first colour of f, or the empty string.
func (f Fill) Color() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

func (f Fill) String() string {
	return strings.Join(f, ", ")
}

// DefaultFills returns the fills used for d when no colours are given: one
// gradient for simple data, one solid colour per layer for layered data.
func DefaultFills(d Data) []Fill {
	l, ok := d.(Layered)
	if !ok {
		return []Fill{Fill(DefaultColorsFor(1))}
	}
	colors := DefaultColorsFor(LayerMaxLength(l))
	fills := make([]Fill, len(colors))
	for i, c := range colors {
		fills[i] = Solid(c)
	}
	return fills
}
