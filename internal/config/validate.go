package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"honnef.co/go/funnel"
	"honnef.co/go/funnel/view"
)

var logLevels = []string{"none", "trace", "debug", "info", "warn", "error", "fatal"}

// Validate checks the configuration for values that cannot be used.
func (c Config) Validate() error {
	if c.Width <= 0 || math.IsNaN(c.Width) || math.IsInf(c.Width, 0) {
		return fmt.Errorf("width must be a positive finite number, got %g", c.Width)
	}
	if c.Height <= 0 || math.IsNaN(c.Height) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("height must be a positive finite number, got %g", c.Height)
	}
	if _, err := funnel.ParseOrientation(c.Direction); err != nil {
		return fmt.Errorf("invalid direction: %w", err)
	}
	if _, err := funnel.ParseOrientation(c.GradientDirection); err != nil {
		return fmt.Errorf("invalid gradient_direction: %w", err)
	}
	if _, err := view.ParseSubLabelValue(c.SubLabelValue); err != nil {
		return fmt.Errorf("invalid sub_label_value: %w", err)
	}
	if c.Log.Level != "" && !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port out of range: %d", c.HTTP.Port)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// GraphOptions returns the graph options described by the configuration,
// without data. The configuration must be valid.
func (c Config) GraphOptions() view.Options {
	direction, _ := funnel.ParseOrientation(c.Direction)
	gradientDirection, _ := funnel.ParseOrientation(c.GradientDirection)
	subLabelValue, _ := view.ParseSubLabelValue(c.SubLabelValue)
	return view.Options{
		Direction:         direction,
		GradientDirection: gradientDirection,
		DisplayPercent:    c.DisplayPercent,
		SubLabelValue:     subLabelValue,
		Width:             c.Width,
		Height:            c.Height,
	}
}
