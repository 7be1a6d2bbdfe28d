// Package view holds the mutable state of a funnel chart and derives its
// geometry, labels and SVG document from that state on demand.
//
// A [Graph] never caches geometry. Every getter takes a snapshot of the
// current data and dimensions and runs the pure functions of package funnel
// on it, so a Graph may be read and modified from multiple goroutines.
package view

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"honnef.co/go/funnel"
)

// ErrNoDimensions is returned when rendering a graph whose width or height
// is not a positive, finite number.
var ErrNoDimensions = errors.New("funnel graph has no dimensions")

// ErrOutOfBounds is returned when rendering a graph whose segments do not fit
// into its drawing area, which happens for data with negative values.
var ErrOutOfBounds = errors.New("funnel geometry exceeds the drawing area")

// The bounds check tolerates the drift of rounding coordinates and
// sub-segment percentages to one decimal place.
const (
	boundsSlack    = 0.05
	boundsRelSlack = 0.01
)

// ErrNoSegment is returned by [Graph.PathMedian] for a segment index that
// does not exist.
var ErrNoSegment = errors.New("no such funnel segment")

// Graph is a funnel chart.
type Graph struct {
	mu  sync.RWMutex
	st  state
	log zerolog.Logger
	// idPrefix keeps gradient ids of different graphs in one document apart.
	idPrefix string
}

// state is everything geometry is derived from.
type state struct {
	data              funnel.Data
	labels            []string
	subLabels         []string
	colors            []funnel.Fill
	direction         funnel.Orientation
	gradientDirection funnel.Orientation
	displayPercent    bool
	subLabelValue     SubLabelValue
	width             float64
	height            float64
}

// New returns a graph configured by opts. The graph keeps its own copies of
// the data and slices in opts.
func New(opts Options) *Graph {
	data := opts.Data
	if data == nil {
		data = funnel.Simple(nil)
	}
	data, _ = funnel.DataFromValues(data)

	colors := cloneFills(opts.Colors)
	if len(colors) == 0 {
		colors = funnel.DefaultFills(data)
	}

	l := zerolog.Nop()
	if opts.Logger != nil {
		l = *opts.Logger
	}

	return &Graph{
		st: state{
			data:              data,
			labels:            slices.Clone(opts.Labels),
			subLabels:         slices.Clone(opts.SubLabels),
			colors:            colors,
			direction:         opts.Direction,
			gradientDirection: opts.GradientDirection,
			displayPercent:    opts.DisplayPercent,
			subLabelValue:     opts.SubLabelValue,
			width:             opts.Width,
			height:            opts.Height,
		},
		log:      l,
		idPrefix: funnel.NewID("fg") + "-",
	}
}

func cloneFills(fills []funnel.Fill) []funnel.Fill {
	if fills == nil {
		return nil
	}
	out := make([]funnel.Fill, len(fills))
	for i, f := range fills {
		out[i] = slices.Clone(f)
	}
	return out
}

func (g *Graph) snapshot() state {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.st
}

func (st state) size() funnel.Size {
	return funnel.Sz(st.width, st.height)
}

func (st state) fullDimension() float64 {
	return st.size().Main(st.direction)
}

func (st state) mainAxisPoints() []float64 {
	return funnel.MainAxisPoints(st.data, st.fullDimension())
}

func (st state) crossAxisPoints() [][]float64 {
	return funnel.CrossAxisPoints(st.data, st.size().Cross(st.direction))
}

func (st state) segmentPath(main, cross, crossNext []float64) funnel.BezPath {
	return funnel.SegmentPath(main, cross, crossNext, st.direction)
}

func (st state) segmentPaths() []funnel.BezPath {
	main := st.mainAxisPoints()
	cross := st.crossAxisPoints()
	paths := make([]funnel.BezPath, 0, len(cross)-1)
	for i := 0; i < len(cross)-1; i++ {
		paths = append(paths, st.segmentPath(main, cross[i], cross[i+1]))
	}
	return paths
}

func (st state) pathDefinitions() []string {
	paths := st.segmentPaths()
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.SVG(funnel.SVGOptions{})
	}
	return out
}

// checkBounds reports whether every path lies within the drawing area.
func (st state) checkBounds(paths []funnel.BezPath) error {
	sz := st.size()
	area := sz.Rect().Inflate(
		boundsSlack+boundsRelSlack*sz.Width,
		boundsSlack+boundsRelSlack*sz.Height,
	)
	for i, p := range paths {
		if p.IsNaN() || p.IsInf() {
			return fmt.Errorf("segment %d: %w", i, ErrOutOfBounds)
		}
		if cbox := p.ControlBox(); !area.ContainsRect(cbox) {
			return fmt.Errorf("segment %d spans %v: %w", i, cbox, ErrOutOfBounds)
		}
	}
	return nil
}

// fill returns the paint of segment i.
func (st state) fill(i int) funnel.Fill {
	colors := st.colors
	if len(colors) == 0 {
		colors = funnel.DefaultFills(st.data)
	}
	if len(colors) == 0 {
		return funnel.Solid(funnel.DefaultColors[0])
	}
	if _, ok := st.data.(funnel.Layered); !ok {
		return colors[0]
	}
	return colors[i%len(colors)]
}

// MainAxisPoints returns the stage boundaries along the main axis.
func (g *Graph) MainAxisPoints() []float64 {
	return g.snapshot().mainAxisPoints()
}

// CrossAxisPoints returns the cross-axis rows of all layer levels.
func (g *Graph) CrossAxisPoints() [][]float64 {
	return g.snapshot().crossAxisPoints()
}

// PathDefinitions returns the SVG path of every segment, in drawing order.
func (g *Graph) PathDefinitions() []string {
	return g.snapshot().pathDefinitions()
}

// PathMedian returns a thin path two units wide running along the middle of
// segment i.
func (g *Graph) PathMedian(i int) (string, error) {
	st := g.snapshot()
	cross := st.crossAxisPoints()
	if i < 0 || i >= len(cross)-1 {
		return "", ErrNoSegment
	}
	lo := make([]float64, len(cross[i]))
	hi := make([]float64, len(cross[i]))
	for j, p := range cross[i] {
		m := (p + cross[i+1][j]) / 2
		lo[j] = m - 1
		hi[j] = m + 1
	}
	return st.segmentPath(st.mainAxisPoints(), lo, hi).SVG(funnel.SVGOptions{}), nil
}

// Percentages returns every stage's total as a percentage of the largest
// stage.
func (g *Graph) Percentages() []float64 {
	return funnel.StagePercentages(g.snapshot().data)
}

// LayerSums returns the total of every stage of layered data, and nil for
// simple data.
func (g *Graph) LayerSums() []float64 {
	l, ok := g.snapshot().data.(funnel.Layered)
	if !ok {
		return nil
	}
	return funnel.RowSums(l)
}

// LayerPercentages returns the share of every sub-segment in its stage for
// layered data, and nil for simple data.
func (g *Graph) LayerPercentages() [][]float64 {
	l, ok := g.snapshot().data.(funnel.Layered)
	if !ok {
		return nil
	}
	return funnel.RowPercentages(l)
}

func (g *Graph) GraphType() GraphType {
	if _, ok := g.snapshot().data.(funnel.Layered); ok {
		return Layered
	}
	return Normal
}

func (g *Graph) IsVertical() bool {
	return g.snapshot().direction == funnel.Vertical
}

// DataSize returns the number of stages.
func (g *Graph) DataSize() int {
	return g.snapshot().data.Len()
}

// SubDataSize returns the number of sub-segments in the first stage of
// layered data, and 0 for simple data.
func (g *Graph) SubDataSize() int {
	if l, ok := g.snapshot().data.(funnel.Layered); ok && len(l) > 0 {
		return len(l[0])
	}
	return 0
}

// FullDimension returns the length of the main axis.
func (g *Graph) FullDimension() float64 {
	return g.snapshot().fullDimension()
}

// Data returns a copy of the graph's data.
func (g *Graph) Data() funnel.Data {
	d, _ := funnel.DataFromValues(g.snapshot().data)
	return d
}

// Colors returns a copy of the graph's fills.
func (g *Graph) Colors() []funnel.Fill {
	return cloneFills(g.snapshot().colors)
}

func (g *Graph) Width() float64                        { return g.snapshot().width }
func (g *Graph) Height() float64                       { return g.snapshot().height }
func (g *Graph) Direction() funnel.Orientation         { return g.snapshot().direction }
func (g *Graph) GradientDirection() funnel.Orientation { return g.snapshot().gradientDirection }
func (g *Graph) DisplayPercent() bool                  { return g.snapshot().displayPercent }

// SetValues replaces the graph's data. Colours are left untouched; see
// [Graph.UpdateData] for a version that maintains them.
func (g *Graph) SetValues(d funnel.Data) {
	if d == nil {
		d = funnel.Simple(nil)
	}
	d, _ = funnel.DataFromValues(d)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.st.data = d
}

func (g *Graph) SetDirection(o funnel.Orientation) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.st.direction = o
}

func (g *Graph) SetWidth(w float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.st.width = w
}

func (g *Graph) SetHeight(h float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.st.height = h
}

// setDirection reports whether the direction changed.
func (g *Graph) setDirection(o funnel.Orientation) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.st.direction == o {
		return false
	}
	g.st.direction = o
	g.log.Debug().Stringer("direction", o).Msg("funnel direction changed")
	return true
}

// MakeVertical lays the stages out from top to bottom. It reports whether
// the direction changed.
func (g *Graph) MakeVertical() bool { return g.setDirection(funnel.Vertical) }

// MakeHorizontal lays the stages out from left to right. It reports whether
// the direction changed.
func (g *Graph) MakeHorizontal() bool { return g.setDirection(funnel.Horizontal) }

// ToggleDirection switches between horizontal and vertical layout.
func (g *Graph) ToggleDirection() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.st.direction = g.st.direction.Toggle()
	g.log.Debug().Stringer("direction", g.st.direction).Msg("funnel direction changed")
}

func (g *Graph) setGradientDirection(o funnel.Orientation) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.st.gradientDirection == o {
		return false
	}
	g.st.gradientDirection = o
	return true
}

// GradientMakeVertical makes gradients run from top to bottom. It reports
// whether the gradient direction changed.
func (g *Graph) GradientMakeVertical() bool { return g.setGradientDirection(funnel.Vertical) }

// GradientMakeHorizontal makes gradients run from left to right. It reports
// whether the gradient direction changed.
func (g *Graph) GradientMakeHorizontal() bool { return g.setGradientDirection(funnel.Horizontal) }

func (g *Graph) GradientToggleDirection() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.st.gradientDirection = g.st.gradientDirection.Toggle()
}

// UpdateData applies u to the graph's data and reports whether the SVG has
// to be redrawn. With reset, all data, labels and colours are cleared before
// u is applied.
//
// When u carries no colours but its values have a different number of
// stages than the current data, default colours are picked for the new
// values.
func (g *Graph) UpdateData(u Update, reset bool) bool {
	var values funnel.Data
	if u.Values != nil {
		values, _ = funnel.DataFromValues(u.Values)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	redraw := false
	if reset {
		g.st.data = funnel.Simple(nil)
		g.st.labels = nil
		g.st.subLabels = nil
		g.st.colors = nil
		redraw = true
	}

	if u.Colors != nil {
		g.st.colors = cloneFills(u.Colors)
		redraw = true
	} else if values != nil && values.Len() != g.st.data.Len() {
		g.st.colors = funnel.DefaultFills(values)
		redraw = true
	}

	if values != nil && !funnel.ValuesEqual(g.st.data, values) {
		g.st.data = values
		redraw = true
	}

	if u.Labels != nil {
		g.st.labels = slices.Clone(u.Labels)
	}
	if _, ok := g.st.data.(funnel.Layered); ok && u.SubLabels != nil {
		g.st.subLabels = slices.Clone(u.SubLabels)
	}

	g.log.Debug().
		Bool("reset", reset).
		Bool("redraw", redraw).
		Int("stages", g.st.data.Len()).
		Msg("funnel data updated")
	return redraw
}

// Update applies p to the graph and reports whether the SVG has to be
// redrawn.
func (g *Graph) Update(p Patch) bool {
	redraw := false
	if p.DisplayPercent != nil {
		g.mu.Lock()
		g.st.displayPercent = *p.DisplayPercent
		g.mu.Unlock()
	}
	if p.Height != nil {
		g.SetHeight(*p.Height)
		redraw = true
	}
	if p.Width != nil {
		g.SetWidth(*p.Width)
		redraw = true
	}
	if p.GradientDirection != nil && g.setGradientDirection(*p.GradientDirection) {
		redraw = true
	}
	if p.Direction != nil && g.setDirection(*p.Direction) {
		redraw = true
	}
	if p.Data != nil && g.UpdateData(*p.Data, false) {
		redraw = true
	}
	return redraw
}
