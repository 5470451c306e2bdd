package generator

import (
	"strings"

	"geosvg/internal/geom"
)

// assembler buckets shapes into groups keyed by label, keeping groups in
// first-seen order and shapes in input order.
type assembler struct {
	groups []*geom.Group
	index  map[string]*geom.Group
}

func newAssembler() *assembler {
	return &assembler{index: make(map[string]*geom.Group)}
}

func (a *assembler) add(label string, s *geom.Shape) {
	g, ok := a.index[label]
	if !ok {
		g = geom.NewGroup(label)
		a.index[label] = g
		a.groups = append(a.groups, g)
	}
	g.Add(s)
}

// Assemble turns placemarks into groups of shapes. Every assigned placemark
// becomes one shape, shared by all of its groups. Placemarks without any
// polygon vertex, such as Point placemarks, are dropped.
func (g *Generator) Assemble(pms []*geom.Placemark) ([]*geom.Group, error) {
	a := newAssembler()
	for _, pm := range pms {
		labels := g.assigner.Assign(pm)
		if len(labels) == 0 {
			continue
		}
		for _, label := range labels {
			if !validGroupName(label) {
				return nil, &ErrInvalidGroupName{Name: label, ID: pm.ID}
			}
		}
		s := g.buildShape(pm, labels)
		if s.Bound.IsEmpty() {
			continue
		}
		for _, label := range labels {
			a.add(label, s)
		}
	}
	return a.groups, nil
}

// buildShape translates every vertex, folds it into the shape bound and
// then applies the filter polygon by polygon. Discarded polygons still
// contribute to the bound.
func (g *Generator) buildShape(pm *geom.Placemark, labels []string) *geom.Shape {
	s := &geom.Shape{ID: pm.ID, Bound: geom.EmptyBound()}
	for _, raw := range pm.Polygons {
		poly := make(geom.Polygon, len(raw))
		for i, p := range raw {
			if g.translator != nil {
				p = g.translator(p, pm.ID, labels)
			}
			poly[i] = p
		}
		s.Bound = geom.ExtendBound(s.Bound, poly...)
		if g.filter == nil || g.filter(poly, pm.ID, labels) {
			s.Polygons = append(s.Polygons, poly)
		}
	}
	return s
}

func validGroupName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`+"\x00")
}
