// Package preview rasterises a group to a PNG thumbnail so a run can be
// checked without an SVG viewer.
package preview

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"

	"geosvg/internal/geom"
	"geosvg/internal/projection"
)

const (
	// maxAspect bounds the height of a preview to this many widths.
	maxAspect = 4

	fillGray   = 0.8
	strokeGray = 0.3
	lineWidth  = 1
)

// Render draws every shape of g filled and outlined on a white canvas
// width pixels wide. The height follows the projected aspect ratio, up to
// maxAspect times the width; taller groups are shrunk to fit.
func Render(g *geom.Group, proj projection.Projector, width int) image.Image {
	maxHeight := float64(maxAspect * width)
	var tl, br orb.Point
	if !g.Bound.IsEmpty() {
		tl, br = proj.Extremes(g.Bound)
	}
	pw := br[0] - tl[0]
	ph := br[1] - tl[1]
	scale := math.Inf(1)
	if pw > 0 {
		scale = float64(width) / pw
	}
	if ph > 0 {
		scale = math.Min(scale, maxHeight/ph)
	}
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	height := int(math.Min(math.Ceil(ph*scale), maxHeight))
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(lineWidth)

	for _, s := range g.Shapes {
		for _, poly := range s.Polygons {
			if len(poly) < 3 {
				continue
			}
			for i, p := range poly {
				q := proj.Project(p)
				x := (q[0] - tl[0]) * scale
				y := (q[1] - tl[1]) * scale
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
		}
		dc.SetRGB(fillGray, fillGray, fillGray)
		dc.FillPreserve()
		dc.SetRGB(strokeGray, strokeGray, strokeGray)
		dc.Stroke()
	}
	return dc.Image()
}

// Save writes img as a PNG file.
func Save(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
