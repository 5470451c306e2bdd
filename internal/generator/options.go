package generator

import (
	"geosvg/internal/pathenc"
	"geosvg/internal/projection"
)

// Options configures a run. It is built once, usually from command line
// flags, and not modified afterwards.
type Options struct {
	// Pretty indents the documents and puts each polygon on its own line.
	Pretty bool

	// Exact writes full precision path values and disables suppression.
	Exact bool

	// MinWritable is the smallest line displacement written on an axis.
	MinWritable float64

	// Precision is the number of decimal digits in path data.
	Precision int

	// Projection is a name accepted by projection.New.
	Projection string

	// SourceIDAttr names the KML SimpleData entry holding the shape id.
	SourceIDAttr string

	// DestIDAttr names the SVG path attribute receiving the shape id.
	DestIDAttr string

	// OutDir receives one <group>.svg per group.
	OutDir string

	// Workers is the number of groups written concurrently.
	Workers int

	// PreviewWidth, when positive, also renders <group>.png that wide.
	PreviewWidth int
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Pretty:       true,
		Exact:        false,
		MinWritable:  0.5,
		Precision:    0,
		Projection:   projection.NameMercator,
		SourceIDAttr: "GEOID",
		DestIDAttr:   "id",
		OutDir:       "out",
		Workers:      1,
		PreviewWidth: 0,
	}
}

// PathOptions returns the path encoding part of the options.
func (o Options) PathOptions() pathenc.Options {
	return pathenc.Options{
		Exact:       o.Exact,
		MinWritable: o.MinWritable,
		Precision:   o.Precision,
		Pretty:      o.Pretty,
	}
}
