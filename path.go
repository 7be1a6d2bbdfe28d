package funnel

import (
	"slices"
)

// CurveMain returns the SVG fragment of the curve from (x1, y1) to (x2, y2)
// with x as the main axis. Both control points lie on the rounded midpoint of
// x1 and x2.
//
// CurveMain(0, 0, 6, 2) == " C3,0 3,2 6,2".
func CurveMain(x1, y1, x2, y2 float64) string {
	return fragment(FunnelCubic(Pt(x1, y1), Pt(x2, y2), Horizontal))
}

// CurveCross returns the SVG fragment of the curve from (x1, y1) to (x2, y2)
// with y as the main axis. Both control points lie on the rounded midpoint of
// y1 and y2.
//
// CurveCross(0, 0, 6, 2) == " C0,1 6,1 6,2".
func CurveCross(x1, y1, x2, y2 float64) string {
	return fragment(FunnelCubic(Pt(x1, y1), Pt(x2, y2), Vertical))
}

func fragment(c CubicBez) string {
	return " " + SVG(slices.Values([]PathElement{c.PathElement()}), SVGOptions{})
}

// SegmentPath builds the closed outline of one funnel segment.
//
// main holds the stage boundaries on the main axis, cross and crossNext the
// two cross-axis rows enclosing the segment. In main/cross space the outline
// starts at (main[0], cross[0]), follows cross forward, drops straight to
// crossNext at the last boundary, follows crossNext backward and closes:
//
//	1---------->2
//	^           |
//	|           v
//	4<----------3
//
// For a vertical funnel the outline is transposed, which makes it run
// counter-clockwise on screen.
//
// Rows of different lengths are truncated to the shortest one. An empty row
// yields an empty path.
func SegmentPath(main, cross, crossNext []float64, o Orientation) BezPath {
	n := min(len(main), len(cross), len(crossNext))
	if n == 0 {
		return nil
	}

	p := make(BezPath, 0, 2*n+1)
	p.MoveTo(Pt(main[0], cross[0]))
	for i := 0; i < n-1; i++ {
		p.PushCubic(FunnelCubic(Pt(main[i], cross[i]), Pt(main[i+1], cross[i+1]), Horizontal))
	}
	p.LineTo(Pt(main[n-1], crossNext[n-1]))
	for i := n - 1; i > 0; i-- {
		p.PushCubic(FunnelCubic(Pt(main[i], crossNext[i]), Pt(main[i-1], crossNext[i-1]), Horizontal))
	}
	p.ClosePath()

	if o == Vertical {
		p.ApplyTransform(Transpose)
	}
	return p
}

// BuildPath returns the SVG path of a horizontal funnel segment. X holds the
// main-axis points, Y the upper and YNext the lower boundary of the segment.
// The outline is drawn clockwise.
func BuildPath(X, Y, YNext []float64) string {
	return SegmentPath(X, Y, YNext, Horizontal).SVG(SVGOptions{})
}

// BuildVerticalPath returns the SVG path of a vertical funnel segment. X and
// XNext hold the left and right boundary of the segment, Y the main-axis
// points. The outline is drawn counter-clockwise: down the left edge, across
// the bottom, up the right edge.
func BuildVerticalPath(X, XNext, Y []float64) string {
	return SegmentPath(Y, X, XNext, Vertical).SVG(SVGOptions{})
}
