// Package projection maps geographic {lng, lat} points onto a plane.
//
// Both projections use a sphere. Longitudes and longitude deltas are
// normalised into [-π, π] before use so shapes that cross the antimeridian
// stay continuous.
package projection

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Names accepted by New.
const (
	NameMercator      = "mercator"
	NameNationalAtlas = "national_atlas"
)

// Projector converts geographic points to planar points.
type Projector interface {
	// Project maps a {lng, lat} point in degrees to {x, y}. y grows downward.
	Project(p orb.Point) orb.Point

	// Extremes returns the projected top-left and bottom-right corners of
	// the rectangle used to size a canvas for bound b.
	Extremes(b orb.Bound) (topLeft, bottomRight orb.Point)
}

// ErrUnknownProjection is returned by New for an unrecognised name.
type ErrUnknownProjection struct {
	Name string
}

func (e *ErrUnknownProjection) Error() string {
	return fmt.Sprintf("unknown projection %q (want %s or %s)", e.Name, NameMercator, NameNationalAtlas)
}

// New returns the projector registered under name.
func New(name string) (Projector, error) {
	switch name {
	case NameMercator:
		return Mercator{}, nil
	case NameNationalAtlas:
		return NewNationalAtlas(), nil
	}
	return nil, &ErrUnknownProjection{Name: name}
}

// Names lists the accepted projection names.
func Names() []string {
	return []string{NameMercator, NameNationalAtlas}
}

// adjustLng wraps an angle in radians that overshoots ±π back by one turn.
func adjustLng(angle float64) float64 {
	switch {
	case angle > math.Pi:
		return angle - 2*math.Pi
	case angle < -math.Pi:
		return angle + 2*math.Pi
	}
	return angle
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
