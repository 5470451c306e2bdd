// Package pathenc encodes projected polygons as compact relative SVG path
// data.
//
// Every displacement is rounded before it is written and the rounding
// residual is carried into the next displacement on the same axis, so the
// written outline never drifts from the true one by more than one rounding
// unit no matter how many vertices a ring has.
package pathenc

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"geosvg/internal/geom"
	"geosvg/internal/projection"
)

// Options controls rounding and layout of the path data.
type Options struct {
	// Exact writes full precision values and disables suppression.
	Exact bool

	// MinWritable forces a line displacement smaller than this to 0 on its
	// axis; the displacement is carried into the next step instead.
	MinWritable float64

	// Precision is the number of decimal digits written.
	Precision int

	// Pretty separates coordinates with a space even before a minus sign
	// and writes each polygon on its own line.
	Pretty bool
}

// DefaultOptions returns the default path options.
func DefaultOptions() Options {
	return Options{
		Exact:       false,
		MinWritable: 0.5,
		Precision:   0,
		Pretty:      true,
	}
}

// Encoder writes the polygons of shapes in one document. It holds no
// mutable state and may be shared between goroutines.
type Encoder struct {
	proj   projection.Projector
	opts   Options
	scale  float64
	origin orb.Point // scaled top-left of the canvas
	pow    float64
}

// NewEncoder returns an encoder for a canvas whose projected top-left corner
// is topLeft, drawn at the given scale.
func NewEncoder(proj projection.Projector, opts Options, scale float64, topLeft orb.Point) *Encoder {
	return &Encoder{
		proj:   proj,
		opts:   opts,
		scale:  scale,
		origin: orb.Point{scale * topLeft[0], scale * topLeft[1]},
		pow:    math.Pow(10, float64(opts.Precision)),
	}
}

// AppendShape appends the path data of every polygon of one path element.
// The cursor starts at the canvas origin because the leading move of a path
// element is absolute, and chains from polygon to polygon after that.
func (e *Encoder) AppendShape(b []byte, polygons []geom.Polygon) []byte {
	cursor := e.origin
	for _, poly := range polygons {
		if len(poly) == 0 {
			continue
		}
		b, cursor, _ = e.appendPolygon(b, poly, cursor)
		if e.opts.Pretty {
			b = append(b, '\n')
		}
	}
	return b
}

// Shape returns the path data of one path element.
func (e *Encoder) Shape(polygons []geom.Polygon) string {
	return string(e.AppendShape(nil, polygons))
}

// appendPolygon writes one closed subpath starting from cursor. It returns
// the cursor after the subpath, which is the written position of its move
// since z returns there, and the residual carry (written - exact) left on
// each axis after the last vertex.
func (e *Encoder) appendPolygon(b []byte, poly geom.Polygon, cursor orb.Point) ([]byte, orb.Point, orb.Point) {
	pts := poly
	if len(pts) > 1 && pts[0].Equal(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}

	last := e.proj.Project(pts[0])
	move := orb.Point{
		e.scale*last[0] - cursor[0],
		e.scale*last[1] - cursor[1],
	}
	b, carry := e.writeVertex(b, 'm', move)
	cursor = orb.Point{
		cursor[0] + move[0] + carry[0],
		cursor[1] + move[1] + carry[1],
	}

	for _, p := range pts[1:] {
		projected := e.proj.Project(p)
		step := orb.Point{
			e.scale*(projected[0]-last[0]) - carry[0],
			e.scale*(projected[1]-last[1]) - carry[1],
		}
		last = projected

		for axis := 0; axis < 2; axis++ {
			if !e.opts.Exact && math.Abs(step[axis]) < e.opts.MinWritable {
				carry[axis] = -step[axis]
				step[axis] = 0
			} else {
				carry[axis] = 0
			}
		}

		var diff orb.Point
		b, diff = e.writeVertex(b, 'l', step)
		carry[0] += diff[0]
		carry[1] += diff[1]
	}
	b = append(b, 'z')
	return b, cursor, carry
}

// writeVertex writes one relative command and returns the residual
// (written - exact) per axis. A line step that rounds to nothing on both
// axes is dropped; a move is always written.
func (e *Encoder) writeVertex(b []byte, cmd byte, v orb.Point) ([]byte, orb.Point) {
	rx, ry := e.round(v[0]), e.round(v[1])
	if rx == 0 && ry == 0 {
		if cmd == 'm' {
			b = append(b, "m0 0"...)
		}
		return b, orb.Point{-v[0], -v[1]}
	}

	x, y := FormatNumber(rx), FormatNumber(ry)
	switch {
	case (x != "0" && y != "0") || cmd == 'm':
		b = append(b, cmd)
		b = append(b, x...)
		if e.opts.Pretty || y[0] != '-' {
			b = append(b, ' ')
		}
		b = append(b, y...)
	case x != "0":
		b = append(b, 'h')
		b = append(b, x...)
	case y != "0":
		b = append(b, 'v')
		b = append(b, y...)
	}
	return b, orb.Point{rx - v[0], ry - v[1]}
}

// round rounds half to even at the configured precision.
func (e *Encoder) round(v float64) float64 {
	if e.opts.Exact {
		return v
	}
	return math.RoundToEven(v*e.pow) / e.pow
}

// FormatNumber writes v in the shortest form SVG accepts: no leading zero
// before the decimal point and no negative zero.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(strings.TrimPrefix(s, "-"), "0")
	if s == "" {
		return "0"
	}
	if neg {
		return "-" + s
	}
	return s
}
