package projection

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Level is the web-map zoom level whose pixel grid Mercator projects onto.
const Level = 12

// pixelScale converts spherical mercator radians to tile pixels at Level.
var pixelScale = 256 / (2 * math.Pi) * math.Pow(2, Level)

// Mercator is the spherical web mercator projection in tile pixels at zoom
// Level, with the origin at the top-left of the world. Latitudes beyond the
// web mercator limit (about ±85.05°) are clamped to the world edge.
type Mercator struct{}

// Project implements Projector.
func (Mercator) Project(p orb.Point) orb.Point {
	lng := degrees(adjustLng(radians(p.Lon())))
	m := project.WGS84.ToMercator(orb.Point{lng, p.Lat()})
	return orb.Point{
		pixelScale * (m[0]/orb.EarthRadius + math.Pi),
		pixelScale * (math.Pi - m[1]/orb.EarthRadius),
	}
}

// Unproject is the inverse of Project.
func (Mercator) Unproject(p orb.Point) orb.Point {
	m := orb.Point{
		(p[0]/pixelScale - math.Pi) * orb.EarthRadius,
		(math.Pi - p[1]/pixelScale) * orb.EarthRadius,
	}
	return project.Mercator.ToWGS84(m)
}

// Extremes implements Projector. Mercator is monotonic on both axes so the
// bound's own corners are the extremes.
func (m Mercator) Extremes(b orb.Bound) (topLeft, bottomRight orb.Point) {
	topLeft = m.Project(orb.Point{b.Min.Lon(), b.Max.Lat()})
	bottomRight = m.Project(orb.Point{b.Max.Lon(), b.Min.Lat()})
	return topLeft, bottomRight
}
