package view

import (
	"math"
	"strconv"
	"strings"

	"honnef.co/go/funnel"
)

// Label describes the caption of one stage.
type Label struct {
	Title string
	// Value is the stage total, formatted with thousands separators.
	Value string
	// Percentage is the stage total relative to the largest stage.
	Percentage float64
	// ShowPercentage is set when the graph displays percentages.
	ShowPercentage bool
	// Segments holds one entry per sub label of layered data.
	Segments []SegmentLabel
}

// PercentageText returns the percentage followed by a percent sign.
func (l Label) PercentageText() string {
	return formatPercent(l.Percentage)
}

// SegmentLabel is the caption of one sub-segment of a stage.
type SegmentLabel struct {
	Title string
	Value string
}

// LegendEntry describes one sub label of a layered graph with its paint.
type LegendEntry struct {
	Title string
	Fill  funnel.Fill
	// Background is a CSS declaration painting an element like the
	// sub-segment.
	Background string
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// Labels returns the captions of all stages.
func (g *Graph) Labels() []Label {
	st := g.snapshot()
	percentages := funnel.StagePercentages(st.data)
	totals := st.data.Totals()

	layered, isLayered := st.data.(funnel.Layered)
	var shares [][]float64
	if isLayered {
		shares = funnel.RowPercentages(layered)
	}

	labels := make([]Label, len(percentages))
	for i, p := range percentages {
		l := Label{
			Value:          funnel.FormatThousands(totals[i]),
			Percentage:     p,
			ShowPercentage: st.displayPercent,
		}
		if i < len(st.labels) {
			l.Title = st.labels[i]
		}
		if isLayered && len(st.subLabels) > 0 {
			l.Segments = make([]SegmentLabel, len(st.subLabels))
			for j, sub := range st.subLabels {
				var share, value float64
				if j < len(shares[i]) {
					share = shares[i][j]
					value = layered[i][j]
				}
				if math.IsNaN(value) {
					value = 0
				}
				seg := SegmentLabel{Title: sub}
				if st.subLabelValue == Raw {
					seg.Value = funnel.FormatThousands(value)
				} else {
					seg.Value = formatPercent(share)
				}
				l.Segments[j] = seg
			}
		}
		labels[i] = l
	}
	return labels
}

// Legend returns one entry per sub label of layered data, and nil for simple
// data.
func (g *Graph) Legend() []LegendEntry {
	st := g.snapshot()
	if _, ok := st.data.(funnel.Layered); !ok || len(st.subLabels) == 0 {
		return nil
	}
	entries := make([]LegendEntry, len(st.subLabels))
	for i, sub := range st.subLabels {
		f := st.fill(i)
		entries[i] = LegendEntry{
			Title:      sub,
			Fill:       f,
			Background: LegendBackground(f, st.gradientDirection),
		}
	}
	return entries
}

// LegendBackground returns the CSS declaration that paints an element with
// f. Gradients run in direction o.
func LegendBackground(f funnel.Fill, o funnel.Orientation) string {
	if !f.IsGradient() {
		return "background-color: " + f.Color()
	}
	var sb strings.Builder
	sb.WriteString("background-image: linear-gradient(")
	if o == funnel.Horizontal {
		sb.WriteString("to right, ")
	}
	sb.WriteString(strings.Join(f, ", "))
	sb.WriteString(")")
	return sb.String()
}
