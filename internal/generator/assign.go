package generator

import (
	"github.com/paulmach/orb"

	"geosvg/internal/geom"
)

// Assigner chooses the groups a placemark is written to. An empty result
// drops the placemark.
type Assigner interface {
	Assign(pm *geom.Placemark) []string
}

// AssignFunc assigns by placemark id.
type AssignFunc func(id string) []string

// Assign implements Assigner.
func (f AssignFunc) Assign(pm *geom.Placemark) []string { return f(pm.ID) }

// Constant puts every placemark in one group.
func Constant(label string) Assigner {
	return AssignFunc(func(string) []string { return []string{label} })
}

// Table assigns by looking the id up in a precomputed map.
func Table(m map[string][]string) Assigner {
	return AssignFunc(func(id string) []string { return m[id] })
}

// ByAttribute groups placemarks by the value of one of their SimpleData
// attributes, e.g. STATEFP to write one document per state. Placemarks
// without the attribute are dropped.
func ByAttribute(name string) Assigner {
	return attributeAssigner(name)
}

type attributeAssigner string

func (a attributeAssigner) Assign(pm *geom.Placemark) []string {
	v := pm.Data[string(a)]
	if v == "" {
		return nil
	}
	return []string{v}
}

// Filter reports whether a translated polygon is kept. It runs after the
// polygon has been folded into the shape bound.
type Filter func(poly geom.Polygon, id string, groups []string) bool

// Translator moves a raw point before it is folded into the shape bound,
// e.g. to place remote territories next to the mainland.
type Translator func(p orb.Point, id string, groups []string) orb.Point
