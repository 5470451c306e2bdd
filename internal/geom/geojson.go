package geom

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Region is a named area used to assign shapes to groups by location.
type Region struct {
	Name     string
	Geometry orb.Geometry // orb.Polygon or orb.MultiPolygon
}

// LoadRegions reads a GeoJSON FeatureCollection of Polygon/MultiPolygon
// features. The region name is taken from the nameProp property; features
// without it or with other geometry types are skipped.
func LoadRegions(path, nameProp string) ([]Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var regions []Region
	for _, ft := range fc.Features {
		name := ft.Properties.MustString(nameProp, "")
		if name == "" {
			continue
		}
		switch g := ft.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			regions = append(regions, Region{Name: name, Geometry: g})
		}
	}
	if len(regions) == 0 {
		return nil, errors.New("geojson: no named polygon regions found")
	}
	return regions, nil
}
