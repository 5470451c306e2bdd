package geom

import "github.com/paulmach/orb"

// EmptyBound returns the inverted sentinel bound: low = (+180,+180),
// high = (-180,-180). Any point folded into it widens it on both axes.
func EmptyBound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{180, 180},
		Max: orb.Point{-180, -180},
	}
}

// ExtendBound folds points into b with a pointwise min/max.
func ExtendBound(b orb.Bound, pts ...orb.Point) orb.Bound {
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// UnionBound folds other into b. A bound that never received a point is
// ignored so shapes whose polygons were all filtered out do not distort the
// group box.
func UnionBound(b, other orb.Bound) orb.Bound {
	if other.IsEmpty() {
		return b
	}
	return ExtendBound(b, other.Min, other.Max)
}
