package geom

import "github.com/paulmach/orb"

// Polygon is a single ring of geographic vertices as {lng, lat}. Rings read
// from KML repeat the first vertex as the last.
type Polygon = orb.Ring

// Placemark is one decoded and validated input feature, before translation.
type Placemark struct {
	ID       string
	Data     map[string]string // SimpleData name -> value
	Polygons []Polygon
}

// Bound returns the raw geographic bound of the placemark.
func (p *Placemark) Bound() orb.Bound {
	b := EmptyBound()
	for _, poly := range p.Polygons {
		b = ExtendBound(b, poly...)
	}
	return b
}

// Shape is a placemark after translation and filtering, ready to render.
// Shapes are shared between groups and must not be modified once built.
type Shape struct {
	ID       string
	Bound    orb.Bound
	Polygons []Polygon
}

// Group collects the shapes written into one output document.
type Group struct {
	Name   string
	Shapes []*Shape
	Bound  orb.Bound
}

// NewGroup returns an empty group with a sentinel bound.
func NewGroup(name string) *Group {
	return &Group{Name: name, Bound: EmptyBound()}
}

// Add appends a shape and widens the group bound to include it.
func (g *Group) Add(s *Shape) {
	g.Shapes = append(g.Shapes, s)
	g.Bound = UnionBound(g.Bound, s.Bound)
}
