package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

type kmlSimpleData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// kmlGeometry is any element below a placemark. Polygons are picked out by
// name so they keep document order whether or not they sit inside a
// MultiGeometry.
type kmlGeometry struct {
	XMLName     xml.Name
	Extrude     *string       `xml:"extrude"`
	Coordinates string        `xml:"outerBoundaryIs>LinearRing>coordinates"`
	Children    []kmlGeometry `xml:",any"`
}

type kmlPlacemark struct {
	SimpleData []kmlSimpleData `xml:"ExtendedData>SchemaData>SimpleData"`
	Elements   []kmlGeometry   `xml:",any"`
}

// polygons appends every Polygon at any depth of gs, in document order.
func polygons(out, gs []kmlGeometry) []kmlGeometry {
	for _, g := range gs {
		if g.XMLName.Local == "Polygon" {
			out = append(out, g)
			continue
		}
		out = polygons(out, g.Children)
	}
	return out
}

// LoadKML reads every Placemark in a KML file. idAttr names the SimpleData
// entry that identifies each placemark.
func LoadKML(path, idAttr string) ([]*Placemark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeKML(f, idAttr)
}

// DecodeKML decodes placemarks at any depth of the document. Polygon
// coordinates are "lng,lat[,alt]" tuples; altitude is ignored. Any placemark
// without the id attribute, any extruded polygon and any malformed tuple
// fails the whole decode.
func DecodeKML(r io.Reader, idAttr string) ([]*Placemark, error) {
	dec := xml.NewDecoder(r)
	var out []*Placemark
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var raw kmlPlacemark
		if err := dec.DecodeElement(&raw, &se); err != nil {
			return nil, fmt.Errorf("kml: %w", err)
		}
		pm, err := convertPlacemark(raw, idAttr, len(out))
		if err != nil {
			return nil, err
		}
		out = append(out, pm)
	}
	if len(out) == 0 {
		return nil, errors.New("kml: no placemarks found")
	}
	return out, nil
}

func convertPlacemark(raw kmlPlacemark, idAttr string, index int) (*Placemark, error) {
	pm := &Placemark{Data: make(map[string]string, len(raw.SimpleData))}
	found := false
	for _, sd := range raw.SimpleData {
		v := strings.TrimSpace(sd.Value)
		pm.Data[sd.Name] = v
		if sd.Name == idAttr {
			pm.ID = v
			found = true
		}
	}
	if !found {
		return nil, &ErrMissingID{Attr: idAttr, Index: index}
	}

	for _, kp := range polygons(nil, raw.Elements) {
		if kp.Extrude != nil && !extrudeOff(*kp.Extrude) {
			return nil, &ErrExtruded{ID: pm.ID, Value: *kp.Extrude}
		}
		ring, err := parseCoordinates(pm.ID, kp.Coordinates)
		if err != nil {
			return nil, err
		}
		pm.Polygons = append(pm.Polygons, ring)
	}
	return pm, nil
}

func extrudeOff(v string) bool {
	switch strings.TrimSpace(v) {
	case "0", "false":
		return true
	}
	return false
}

// parseCoordinates splits a KML coordinate list into a ring of {lng, lat}.
func parseCoordinates(id, s string) (Polygon, error) {
	// coordinates may be separated by any whitespace, including newlines
	tuples := strings.Fields(s)
	ring := make(Polygon, 0, len(tuples))
	for _, tuple := range tuples {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, &ErrInvalidVertex{ID: id, Token: tuple, Reason: "expected lng,lat[,alt]"}
		}
		lng, err := parseDegrees(vals[0])
		if err != nil {
			return nil, &ErrInvalidVertex{ID: id, Token: tuple, Reason: err.Error()}
		}
		lat, err := parseDegrees(vals[1])
		if err != nil {
			return nil, &ErrInvalidVertex{ID: id, Token: tuple, Reason: err.Error()}
		}
		ring = append(ring, orb.Point{lng, lat})
	}
	return ring, nil
}

// parseDegrees accepts finite decimal numbers only. ParseFloat alone would
// also let through NaN, Inf and hex floats.
func parseDegrees(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, errors.New("not a decimal number")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("non-finite value")
	}
	return v, nil
}
