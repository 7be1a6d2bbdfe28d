package view

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"honnef.co/go/funnel"
)

const documentTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="[[width]]" height="[[height]]" viewBox="0 0 [[width]] [[height]]">[[defs]][[paths]]</svg>`

var document = fasttemplate.New(documentTemplate, "[[", "]]")

// RenderSVG writes the graph as a standalone SVG document to w: one path per
// segment, with the linear gradients used by gradient fills in a defs
// element.
func (g *Graph) RenderSVG(w io.Writer) error {
	st := g.snapshot()
	if sz := st.size(); sz.IsEmpty() || !sz.IsFinite() {
		return ErrNoDimensions
	}

	paths := st.segmentPaths()
	if err := st.checkBounds(paths); err != nil {
		return err
	}
	var defs, body strings.Builder
	for i, p := range paths {
		f := st.fill(i)
		paint := html.EscapeString(f.Color())
		if f.IsGradient() {
			id := g.idPrefix + "funnelGradient-" + strconv.Itoa(i+1)
			writeGradient(&defs, id, f, st.gradientDirection)
			paint = "url(#" + id + ")"
		}
		body.WriteString(`<path d="`)
		if err := p.WriteSVG(&body, funnel.SVGOptions{}); err != nil {
			return err
		}
		fmt.Fprintf(&body, `" fill="%s" stroke="%s"/>`, paint, paint)
	}

	_, err := document.ExecuteFunc(w, func(w io.Writer, tag string) (int, error) {
		switch tag {
		case "width":
			return io.WriteString(w, strconv.FormatFloat(st.width, 'f', -1, 64))
		case "height":
			return io.WriteString(w, strconv.FormatFloat(st.height, 'f', -1, 64))
		case "defs":
			if defs.Len() == 0 {
				return 0, nil
			}
			return io.WriteString(w, "<defs>"+defs.String()+"</defs>")
		case "paths":
			return io.WriteString(w, body.String())
		default:
			return 0, fmt.Errorf("unknown template tag %q", tag)
		}
	})
	if err != nil {
		return err
	}
	g.log.Debug().
		Int("paths", len(paths)).
		Stringer("direction", st.direction).
		Stringer("size", st.size()).
		Msg("funnel rendered")
	return nil
}

// SVG returns the document written by [Graph.RenderSVG].
func (g *Graph) SVG() (string, error) {
	var sb strings.Builder
	if err := g.RenderSVG(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeGradient(sb *strings.Builder, id string, f funnel.Fill, o funnel.Orientation) {
	fmt.Fprintf(sb, `<linearGradient id="%s"`, id)
	if o == funnel.Vertical {
		sb.WriteString(` x1="0" x2="0" y1="0" y2="1"`)
	}
	sb.WriteString(">")
	for i, c := range f {
		offset := math.Round(100 * float64(i) / float64(len(f)-1))
		fmt.Fprintf(sb, `<stop stop-color="%s" offset="%g%%"/>`, html.EscapeString(c), offset)
	}
	sb.WriteString("</linearGradient>")
}
