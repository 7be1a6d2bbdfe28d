package funnel

import (
	"errors"
	"strings"
	"testing"
)

func TestControlBox(t *testing.T) {
	// a sort of map ping looking thing drawn with a single cubic
	// cbox is wildly different than tight box
	var p BezPath
	p.MoveTo(Pt(200, 300))
	p.CubicTo(Pt(50, 50), Pt(350, 50), Pt(200, 300))
	want := Rect{50, 50, 350, 300}
	diff(t, want, p.ControlBox())

	diff(t, Rect{}, BezPath(nil).ControlBox())
}

func TestBezPathTransform(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 9.6))
	p.PushCubic(FunnelCubic(Pt(0, 9.6), Pt(30, 29.3), Horizontal))
	p.LineTo(Pt(30, 31.3))
	p.ClosePath()

	q := p.Transform(Transpose)
	want := BezPath{
		MoveTo(Pt(9.6, 0)),
		CubicTo(Pt(9.6, 15), Pt(29.3, 15), Pt(29.3, 30)),
		LineTo(Pt(31.3, 30)),
		ClosePath(),
	}
	diff(t, want, q)
	// Transform does not modify the receiver.
	diff(t, MoveTo(Pt(0, 9.6)), p[0])

	p.ApplyTransform(Transpose)
	diff(t, want, p)
}

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(15, 0), Pt(15, 14.9), Pt(30, 14.9))
	p.LineTo(Pt(30, 29.9))
	p.ClosePath()

	diff(t, "M0,0 C15,0 15,14.9 30,14.9 L30,29.9 Z", p.SVG(SVGOptions{}))

	var sb strings.Builder
	if err := p.WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	diff(t, p.SVG(SVGOptions{}), sb.String())

	var q BezPath
	q.MoveTo(Pt(800.0/3, 1.5))
	q.LineTo(Pt(-2.0/3, 10))
	diff(t, "M266.67,1.5 L-0.67,10", q.SVG(SVGOptions{MaxPrecision: 2}))
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 1))
	if err := p.WriteSVG(failingWriter{}, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestPathElementString(t *testing.T) {
	diff(t, "LineTo((1, 2), (0, 0), (0, 0))", LineTo(Pt(1, 2)).String())
	diff(t, "InvalidPathElement((0, 0), (0, 0), (0, 0))", PathElement{}.String())
}
