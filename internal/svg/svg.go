// Package svg writes one SVG document per group of shapes.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"geosvg/internal/geom"
	"geosvg/internal/pathenc"
	"geosvg/internal/projection"
)

// MaxWidth is the widest canvas, in output units, a document is scaled to.
const MaxWidth = 1000

// Scale returns the factor that fits the projected width into MaxWidth.
// It never exceeds 1: small regions keep their projected size.
func Scale(topLeft, bottomRight orb.Point) float64 {
	scale := MaxWidth / (bottomRight[0] - topLeft[0])
	if scale > 1 || math.IsNaN(scale) {
		return 1
	}
	return scale
}

// Writer renders groups with a fixed projection and path encoding.
type Writer struct {
	Projector projection.Projector
	Path      pathenc.Options

	// IDAttr names the path attribute carrying the shape id.
	IDAttr string
}

// Layout describes the canvas computed for a group.
type Layout struct {
	Scale       float64
	TopLeft     orb.Point
	BottomRight orb.Point
}

// Width is the scaled canvas width.
func (l Layout) Width() float64 { return l.Scale * (l.BottomRight[0] - l.TopLeft[0]) }

// Height is the scaled canvas height.
func (l Layout) Height() float64 { return l.Scale * (l.BottomRight[1] - l.TopLeft[1]) }

// Layout computes the canvas for g from its bound. A group whose bound never
// received a point gets an empty canvas at the origin.
func (w *Writer) Layout(g *geom.Group) Layout {
	if g.Bound.IsEmpty() {
		return Layout{Scale: 1}
	}
	tl, br := w.Projector.Extremes(g.Bound)
	return Layout{Scale: Scale(tl, br), TopLeft: tl, BottomRight: br}
}

// WriteGroup writes the complete document for g to out.
func (w *Writer) WriteGroup(out io.Writer, g *geom.Group) error {
	bw := bufio.NewWriter(out)
	layout := w.Layout(g)
	enc := pathenc.NewEncoder(w.Projector, w.Path, layout.Scale, layout.TopLeft)

	w.writeHeader(bw, layout)
	var buf []byte
	for _, s := range g.Shapes {
		buf = w.appendPath(buf[:0], enc, s)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("svg: write %s/%s: %w", g.Name, s.ID, err)
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func (w *Writer) writeHeader(bw *bufio.Writer, l Layout) {
	nl := ""
	if w.Path.Pretty {
		nl = "\n"
	}
	bw.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + nl)
	bw.WriteString(`<!DOCTYPE svg PUBLIC '-//W3C//DTD SVG 1.1//EN' 'http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd'>` + nl)
	fmt.Fprintf(bw, `<svg viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">%s`,
		formatG(l.Width()), formatG(l.Height()), nl)
}

func (w *Writer) appendPath(b []byte, enc *pathenc.Encoder, s *geom.Shape) []byte {
	if w.Path.Pretty {
		b = append(b, "  "...)
	}
	b = append(b, "<path "...)
	b = append(b, w.IDAttr...)
	b = append(b, `="`...)
	b = appendEscaped(b, s.ID)
	b = append(b, `" d="`...)
	b = enc.AppendShape(b, s.Polygons)
	if w.Path.Pretty {
		b = append(b, "\" />\n"...)
	} else {
		b = append(b, `"/>`...)
	}
	return b
}

// formatG formats like printf %g with six significant digits.
func formatG(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

type byteWriter struct{ b []byte }

func (w *byteWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

func appendEscaped(b []byte, s string) []byte {
	w := &byteWriter{b: b}
	xml.EscapeText(w, []byte(s))
	return w.b
}
