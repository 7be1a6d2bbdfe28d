package funnel

// CubicBez is a cubic Bézier curve from P0 to P3 with control points P1 and
// P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// FunnelCubic returns the curve that joins two neighbouring stage boundaries
// of a funnel edge.
//
// For a horizontal funnel both control points sit at the rounded midpoint of
// p0.X and p1.X, at the heights of p0 and p1 respectively, so the curve leaves
// and enters the boundaries horizontally. Chaining such curves produces a
// smooth, symmetric edge. For a vertical funnel the roles of x and y are
// swapped.
func FunnelCubic(p0, p1 Point, o Orientation) CubicBez {
	if o == Vertical {
		m := Round1((p1.Y + p0.Y) / 2)
		return CubicBez{
			P0: p0,
			P1: Pt(p0.X, m),
			P2: Pt(p1.X, m),
			P3: p1,
		}
	}
	m := Round1((p1.X + p0.X) / 2)
	return CubicBez{
		P0: p0,
		P1: Pt(m, p0.Y),
		P2: Pt(m, p1.Y),
		P3: p1,
	}
}

// ControlBox returns the smallest rectangle enclosing all four points of the
// curve. A Bézier curve never leaves its control box.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P1).
		UnionPoint(c.P2).
		UnionPoint(c.P3)
}

// PathElement returns the "cubic to" element that draws c from its start
// point.
func (c CubicBez) PathElement() PathElement {
	return CubicTo(c.P1, c.P2, c.P3)
}
