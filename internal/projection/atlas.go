package projection

import (
	"math"

	"github.com/paulmach/orb"
)

// SphereRadius is the Clarke 1866 authalic sphere radius in meters.
const SphereRadius = 6370997

// NationalAtlas is the spherical Lambert azimuthal equal-area projection
// centred on 45°N 100°W used by the US National Atlas. Output is in meters
// with y growing southward.
//
// Formulas are the spherical ones from Snyder, USGS Bulletin 1532.
type NationalAtlas struct {
	RefLat, RefLng float64 // degrees
}

// NewNationalAtlas returns the projection with the National Atlas reference.
func NewNationalAtlas() NationalAtlas {
	return NationalAtlas{RefLat: 45, RefLng: -100}
}

// Project implements Projector.
func (a NationalAtlas) Project(p orb.Point) orb.Point {
	lat := radians(p.Lat())
	lng := adjustLng(radians(p.Lon()))
	refLat := radians(a.RefLat)
	refLng := radians(a.RefLng)
	dLng := adjustLng(lng - refLng)

	k := math.Sqrt(2 / (1 + math.Sin(refLat)*math.Sin(lat) + math.Cos(refLat)*math.Cos(lat)*math.Cos(dLng)))
	return orb.Point{
		SphereRadius * k * math.Cos(lat) * math.Sin(dLng),
		-SphereRadius * k * (math.Cos(refLat)*math.Sin(lat) - math.Sin(refLat)*math.Cos(lat)*math.Cos(dLng)),
	}
}

// Extremes implements Projector.
//
// The projection is not separable by axis, so the rectangle is estimated
// from four sample points: the top from the north-west corner, the bottom
// from the southern edge on the reference meridian, and left/right from the
// west/east edges halfway between the reference latitude and the southern
// edge. Irregular regions can be slightly over- or under-covered; this only
// affects canvas size, never shape geometry.
func (a NationalAtlas) Extremes(b orb.Bound) (topLeft, bottomRight orb.Point) {
	midLat := (a.RefLat + b.Min.Lat()) / 2
	top := a.Project(orb.Point{b.Min.Lon(), b.Max.Lat()})
	left := a.Project(orb.Point{b.Min.Lon(), midLat})
	bottom := a.Project(orb.Point{a.RefLng, b.Min.Lat()})
	right := a.Project(orb.Point{b.Max.Lon(), midLat})
	return orb.Point{left[0], top[1]}, orb.Point{right[0], bottom[1]}
}
