package view

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"honnef.co/go/funnel"
)

// GraphType distinguishes funnels drawn from simple data from those drawn
// from layered data.
type GraphType int

const (
	Normal GraphType = iota
	Layered
)

func (t GraphType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Layered:
		return "layered"
	default:
		return fmt.Sprintf("GraphType(%d)", int(t))
	}
}

// SubLabelValue selects how the values of sub-segments are shown in labels.
type SubLabelValue int

const (
	// Percent shows each sub-segment's share of its stage.
	Percent SubLabelValue = iota
	// Raw shows each sub-segment's value.
	Raw
)

func (v SubLabelValue) String() string {
	switch v {
	case Percent:
		return "percent"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("SubLabelValue(%d)", int(v))
	}
}

// ParseSubLabelValue parses "percent" or "raw", ignoring case. The empty
// string parses as Percent.
func ParseSubLabelValue(s string) (SubLabelValue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "percent":
		return Percent, nil
	case "raw":
		return Raw, nil
	default:
		return Percent, fmt.Errorf("unknown sub label value %q", s)
	}
}

func (v SubLabelValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *SubLabelValue) UnmarshalText(b []byte) error {
	p, err := ParseSubLabelValue(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Options configure a new [Graph].
type Options struct {
	Data      funnel.Data
	Labels    []string
	SubLabels []string
	// Colors holds one fill per segment. Simple data uses only the first
	// fill. When empty, colours are picked with [funnel.DefaultFills].
	Colors []funnel.Fill

	Direction         funnel.Orientation
	GradientDirection funnel.Orientation
	DisplayPercent    bool
	SubLabelValue     SubLabelValue

	// Width and Height are the dimensions of the drawing area. Both must be
	// positive by the time the graph is rendered.
	Width  float64
	Height float64

	// Logger receives debug messages about state changes. It defaults to a
	// disabled logger.
	Logger *zerolog.Logger
}

// Update is a partial replacement of a graph's data. Nil fields are left
// untouched.
type Update struct {
	Values    funnel.Data
	Labels    []string
	SubLabels []string
	Colors    []funnel.Fill
}

// Patch is a partial replacement of a graph's options. Nil fields are left
// untouched.
type Patch struct {
	DisplayPercent    *bool
	Width             *float64
	Height            *float64
	Direction         *funnel.Orientation
	GradientDirection *funnel.Orientation
	Data              *Update
}
