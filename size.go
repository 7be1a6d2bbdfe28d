package funnel

import (
	"fmt"
	"math"
)

// Size is the width and height of the area a funnel is drawn into.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Main returns the extent of the main axis for the given orientation: the
// width of a horizontal funnel, the height of a vertical one.
func (sz Size) Main(o Orientation) float64 {
	if o == Vertical {
		return sz.Height
	}
	return sz.Width
}

// Cross returns the extent of the cross axis for the given orientation.
func (sz Size) Cross(o Orientation) float64 {
	if o == Vertical {
		return sz.Width
	}
	return sz.Height
}

// IsEmpty reports whether the size has no area.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}

// IsFinite reports whether neither width nor height is NaN or infinite.
func (sz Size) IsFinite() bool {
	return !math.IsNaN(sz.Width) && !math.IsInf(sz.Width, 0) &&
		!math.IsNaN(sz.Height) && !math.IsInf(sz.Height, 0)
}

// Rect returns the rectangle spanning from the origin to (width, height).
func (sz Size) Rect() Rect {
	return NewRectFromPoints(Pt(0, 0), Pt(sz.Width, sz.Height))
}
