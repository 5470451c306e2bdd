package geom

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
)

// RegionIndex assigns placemarks to the regions containing them. Candidate
// regions come from an R-tree over region bounds and are confirmed with an
// exact point-in-polygon test.
type RegionIndex struct {
	tree    rtree.RTreeG[int]
	regions []Region
}

// NewRegionIndex builds the index. Regions are reported in input order.
func NewRegionIndex(regions []Region) *RegionIndex {
	ix := &RegionIndex{regions: regions}
	for i, r := range regions {
		b := r.Geometry.Bound()
		ix.tree.Insert(b.Min, b.Max, i)
	}
	return ix
}

// Lookup returns the names of all regions containing p.
func (ix *RegionIndex) Lookup(p orb.Point) []string {
	var hits []int
	ix.tree.Search(p, p, func(min, max [2]float64, i int) bool {
		if contains(ix.regions[i].Geometry, p) {
			hits = append(hits, i)
		}
		return true
	})
	if len(hits) == 0 {
		return nil
	}
	// the tree does not preserve insertion order
	sort.Ints(hits)
	names := make([]string, 0, len(hits))
	for _, i := range hits {
		names = append(names, ix.regions[i].Name)
	}
	return names
}

// Assign places a placemark by the center of its raw bound.
func (ix *RegionIndex) Assign(pm *Placemark) []string {
	b := pm.Bound()
	if b.IsEmpty() {
		return nil
	}
	return ix.Lookup(b.Center())
}

// Len returns the number of indexed regions.
func (ix *RegionIndex) Len() int {
	return ix.tree.Len()
}

func contains(g orb.Geometry, p orb.Point) bool {
	switch g := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, p)
	}
	return false
}
