package tui

import (
	"math"

	"github.com/paulmach/orb"

	"geosvg/internal/geom"
	"geosvg/internal/projection"
)

// dotBits maps a dot position inside a braille cell (2 wide, 4 tall) to its
// bit in the U+2800 block.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvas is a dot raster backed by braille cells.
type canvas struct {
	cols, rows int
	cells      [][]uint8
}

func newCanvas(cols, rows int) *canvas {
	cells := make([][]uint8, rows)
	for i := range cells {
		cells[i] = make([]uint8, cols)
	}
	return &canvas{cols: cols, rows: rows, cells: cells}
}

func (c *canvas) dotsWide() int { return c.cols * 2 }
func (c *canvas) dotsTall() int { return c.rows * 4 }

func (c *canvas) plot(x, y int) {
	if x < 0 || y < 0 || x >= c.dotsWide() || y >= c.dotsTall() {
		return
	}
	c.cells[y/4][x/2] |= dotBits[y%4][x%2]
}

// line plots a Bresenham segment.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.rows)
	for y, row := range c.cells {
		r := make([]rune, c.cols)
		for x, mask := range row {
			if mask == 0 {
				r[x] = ' '
			} else {
				r[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(r)
	}
	return out
}

// sketch draws the outlines of every shape of g in a cols x rows cell box,
// keeping the projected aspect ratio.
func sketch(g *geom.Group, proj projection.Projector, cols, rows int) []string {
	c := newCanvas(cols, rows)
	if g == nil || g.Bound.IsEmpty() {
		return c.lines()
	}
	tl, br := proj.Extremes(g.Bound)
	pw, ph := br[0]-tl[0], br[1]-tl[1]
	scale := math.Min(float64(c.dotsWide()-1)/pw, float64(c.dotsTall()-1)/ph)
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	dot := func(p orb.Point) (int, int) {
		q := proj.Project(p)
		return int(math.Round((q[0] - tl[0]) * scale)), int(math.Round((q[1] - tl[1]) * scale))
	}

	for _, s := range g.Shapes {
		for _, poly := range s.Polygons {
			if len(poly) == 0 {
				continue
			}
			x0, y0 := dot(poly[0])
			for _, p := range poly[1:] {
				x1, y1 := dot(p)
				c.line(x0, y0, x1, y1)
				x0, y0 = x1, y1
			}
		}
	}
	return c.lines()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
