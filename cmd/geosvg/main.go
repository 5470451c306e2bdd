package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"geosvg/internal/dataset"
	"geosvg/internal/generator"
	"geosvg/internal/geom"
	"geosvg/internal/projection"
	"geosvg/internal/tui"
)

const helpBanner = `geosvg converts KML boundary polygons into compact SVG documents,
one per group.

Usage: geosvg -in counties.kml [-dataset name | -group name | -assign-attr attr |
              -assign-csv file | -regions file] [options]

`

// config is everything parsed from the command line.
type config struct {
	opts       generator.Options
	source     string
	dataset    string
	group      string
	assignAttr string
	assignCSV  string
	regions    string
	regionProp string
	plain      bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	def := generator.DefaultOptions()
	var (
		c     config
		crush bool
	)
	fs := flag.NewFlagSet("geosvg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, helpBanner)
		fs.PrintDefaults()
	}

	fs.StringVar(&c.source, "in", "", "Source KML file")
	fs.StringVar(&c.opts.OutDir, "out", def.OutDir, "Output directory")
	fs.StringVar(&c.dataset, "dataset", "", "Dataset preset: "+strings.Join(dataset.Names(), ", "))
	fs.StringVar(&c.opts.SourceIDAttr, "id-attr", def.SourceIDAttr, "KML SimpleData attribute holding the shape id")
	fs.StringVar(&c.opts.DestIDAttr, "dest-id-attr", def.DestIDAttr, "SVG path attribute receiving the shape id")
	fs.StringVar(&c.group, "group", "", "Put every shape into this group")
	fs.StringVar(&c.assignAttr, "assign-attr", "", "Group shapes by this KML SimpleData attribute")
	fs.StringVar(&c.assignCSV, "assign-csv", "", "CSV file mapping shape ids to groups")
	fs.StringVar(&c.regions, "regions", "", "GeoJSON file of named regions to group shapes by location")
	fs.StringVar(&c.regionProp, "region-prop", "name", "Region feature property holding the group name")
	fs.BoolVar(&crush, "crush", false, "Write compact documents without indentation")
	fs.BoolVar(&c.opts.Exact, "exact", def.Exact, "Write full precision path data without suppression")
	fs.Float64Var(&c.opts.MinWritable, "min-writable", def.MinWritable, "Smallest line displacement written on an axis")
	fs.IntVar(&c.opts.Precision, "precision", def.Precision, "Decimal digits in path data")
	fs.StringVar(&c.opts.Projection, "projection", def.Projection, "Projection: "+strings.Join(projection.Names(), ", "))
	fs.IntVar(&c.opts.Workers, "conc", def.Workers, "Number of groups written concurrently")
	fs.IntVar(&c.opts.PreviewWidth, "png", def.PreviewWidth, "Also render a PNG preview this many pixels wide")
	fs.BoolVar(&c.plain, "plain", false, "Print log lines instead of the interactive view")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	c.opts.Pretty = !crush

	if c.source == "" {
		return c, errors.New("missing -in")
	}
	if c.opts.Precision < 0 {
		return c, fmt.Errorf("invalid -precision %d", c.opts.Precision)
	}
	if c.opts.MinWritable < 0 {
		return c, fmt.Errorf("invalid -min-writable %g", c.opts.MinWritable)
	}
	// the preset's id attribute applies unless -id-attr was given
	if c.dataset != "" {
		set := false
		fs.Visit(func(f *flag.Flag) { set = set || f.Name == "id-attr" })
		if !set {
			p, err := dataset.Lookup(c.dataset)
			if err != nil {
				return c, err
			}
			c.opts = p.Options(c.opts)
		}
	}
	return c, nil
}

// assignment resolves the assigner and optional collaborators. Explicit
// assignment flags win over the dataset preset's assigner; the preset's
// translator and filter are always kept.
func (c config) assignment() (generator.Assigner, []generator.Option, error) {
	var (
		assigner generator.Assigner
		options  []generator.Option
	)
	if c.dataset != "" {
		p, err := dataset.Lookup(c.dataset)
		if err != nil {
			return nil, nil, err
		}
		assigner = p.Assigner
		options = p.GeneratorOptions()
	}

	switch {
	case c.assignCSV != "":
		m, err := geom.LoadAssignments(c.assignCSV)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", c.assignCSV, err)
		}
		assigner = generator.Table(m)
	case c.regions != "":
		regions, err := geom.LoadRegions(c.regions, c.regionProp)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", c.regions, err)
		}
		assigner = geom.NewRegionIndex(regions)
	case c.assignAttr != "":
		assigner = generator.ByAttribute(c.assignAttr)
	case c.group != "":
		assigner = generator.Constant(c.group)
	}

	if assigner == nil {
		return nil, nil, errors.New("no grouping: use -dataset, -group, -assign-attr, -assign-csv or -regions")
	}
	return assigner, options, nil
}

func main() {
	log.SetFlags(0)

	c, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(tui.Error(err.Error()))
	}
	assigner, options, err := c.assignment()
	if err != nil {
		log.Fatal(tui.Error(err.Error()))
	}
	if ix, ok := assigner.(*geom.RegionIndex); ok {
		log.Printf("%s %d regions from %s", tui.Title("indexed"), ix.Len(), c.regions)
	}
	// validates the projection name before anything is read
	proj, err := projection.New(c.opts.Projection)
	if err != nil {
		log.Fatal(tui.Error(err.Error()))
	}

	run := func(emit func(generator.Event)) ([]generator.Result, error) {
		g, err := generator.New(c.opts, assigner, append(options, generator.WithEvents(emit))...)
		if err != nil {
			return nil, err
		}
		return g.Generate(c.source)
	}

	var results []generator.Result
	if !c.plain && term.IsTerminal(int(os.Stdout.Fd())) {
		m, err := tui.Run(tui.New(c.source, proj), run)
		if err != nil {
			log.Fatal(tui.Error(err.Error()))
		}
		if m.Aborted() {
			os.Exit(130)
		}
		results, err = m.Results()
		if err != nil {
			log.Fatal(tui.Error(err.Error()))
		}
	} else {
		results, err = run(logEvent)
		if err != nil {
			log.Fatal(tui.Error(err.Error()))
		}
	}
	log.Print(tui.OK(fmt.Sprintf("wrote %d documents to %s", len(results), c.opts.OutDir)))
}

func logEvent(e generator.Event) {
	switch e := e.(type) {
	case generator.Loaded:
		log.Printf("%s %d placemarks from %s", tui.Title("read"), e.Placemarks, e.Source)
	case generator.Assembled:
		log.Printf("%s %d groups, %d shapes", tui.Title("assembled"), e.Groups, e.Shapes)
	case generator.GroupWritten:
		log.Printf("%s %s", tui.Dim(fmt.Sprintf("[%d/%d]", e.Done, e.Total)), tui.ResultLine(e.Result))
	}
}
