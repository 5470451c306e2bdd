// Package generator turns KML placemarks into one SVG document per group.
//
// A run decodes and validates the whole input, assigns placemarks to groups
// through the caller's Assigner, applies the optional Translator and Filter,
// and only then writes the groups. Any input error therefore aborts the run
// before a document is written.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"geosvg/internal/geom"
	"geosvg/internal/preview"
	"geosvg/internal/projection"
	"geosvg/internal/svg"
)

// Generator runs the conversion with fixed options and collaborators.
type Generator struct {
	opts       Options
	proj       projection.Projector
	writer     *svg.Writer
	assigner   Assigner
	filter     Filter
	translator Translator
	events     func(Event)
}

// Option sets an optional collaborator.
type Option func(*Generator)

// WithFilter sets the polygon filter.
func WithFilter(f Filter) Option {
	return func(g *Generator) { g.filter = f }
}

// WithTranslator sets the point translator.
func WithTranslator(t Translator) Option {
	return func(g *Generator) { g.translator = t }
}

// WithEvents sets a callback receiving progress events. It may be called
// from several goroutines when Workers > 1, but never concurrently.
func WithEvents(fn func(Event)) Option {
	return func(g *Generator) { g.events = fn }
}

// New validates opts and returns a generator. An unknown projection name is
// an error.
func New(opts Options, assigner Assigner, options ...Option) (*Generator, error) {
	proj, err := projection.New(opts.Projection)
	if err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	g := &Generator{
		opts:     opts,
		proj:     proj,
		assigner: assigner,
		writer: &svg.Writer{
			Projector: proj,
			Path:      opts.PathOptions(),
			IDAttr:    opts.DestIDAttr,
		},
	}
	for _, o := range options {
		o(g)
	}
	return g, nil
}

// Generate converts the KML file at source and writes the documents.
func (g *Generator) Generate(source string) ([]Result, error) {
	pms, err := geom.LoadKML(source, g.opts.SourceIDAttr)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	g.emit(Loaded{Source: source, Placemarks: len(pms)})

	groups, err := g.Assemble(pms)
	if err != nil {
		return nil, err
	}
	g.emit(Assembled{Groups: len(groups), Shapes: countShapes(groups)})

	return g.WriteGroups(groups)
}

// WriteGroups writes every group to OutDir, using up to Workers goroutines.
// Results are returned in group order. The first error stops further groups
// from being started.
func (g *Generator) WriteGroups(groups []*geom.Group) ([]Result, error) {
	if err := os.MkdirAll(g.opts.OutDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]Result, len(groups))
	jobs := make(chan int)
	var (
		mu       sync.Mutex
		firstErr error
		done     int
		wg       sync.WaitGroup
	)
	for w := 0; w < g.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := g.writeGroup(groups[i])

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results[i] = res
					done++
					g.emit(GroupWritten{Result: res, Outline: groups[i], Done: done, Total: len(groups)})
				}
				mu.Unlock()
			}
		}()
	}

	for i := range groups {
		mu.Lock()
		failed := firstErr != nil
		mu.Unlock()
		if failed {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func (g *Generator) writeGroup(group *geom.Group) (Result, error) {
	res := Result{
		Group:  group.Name,
		Shapes: len(group.Shapes),
		Path:   filepath.Join(g.opts.OutDir, group.Name+".svg"),
	}
	n, err := writeFile(res.Path, func(w io.Writer) error {
		return g.writer.WriteGroup(w, group)
	})
	if err != nil {
		return Result{}, fmt.Errorf("write group %s: %w", group.Name, err)
	}
	res.Bytes = n

	if g.opts.PreviewWidth > 0 {
		res.Preview = filepath.Join(g.opts.OutDir, group.Name+".png")
		img := preview.Render(group, g.proj, g.opts.PreviewWidth)
		if err := preview.Save(res.Preview, img); err != nil {
			return Result{}, fmt.Errorf("preview group %s: %w", group.Name, err)
		}
	}
	return res, nil
}

// writeFile creates path, hands it to fn and closes it, returning the
// number of bytes written.
func writeFile(path string, fn func(io.Writer) error) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: f}
	if err := fn(cw); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (g *Generator) emit(e Event) {
	if g.events != nil {
		g.events(e)
	}
}

func countShapes(groups []*geom.Group) int {
	n := 0
	for _, grp := range groups {
		n += len(grp.Shapes)
	}
	return n
}
