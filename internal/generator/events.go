package generator

import "geosvg/internal/geom"

// Event reports progress of a run. Concrete events are Loaded, Assembled
// and GroupWritten.
type Event interface {
	event()
}

// Loaded is emitted once the input has been decoded and validated.
type Loaded struct {
	Source     string
	Placemarks int
}

// Assembled is emitted once every placemark has been assigned.
type Assembled struct {
	Groups int
	Shapes int // shapes written, counting shared shapes once per group
}

// GroupWritten is emitted after each document is closed. Outline is the
// group that was written; it must not be modified.
type GroupWritten struct {
	Result
	Outline     *geom.Group
	Done, Total int
}

// Result describes one written document.
type Result struct {
	Group   string
	Path    string
	Preview string // empty unless a preview was rendered
	Shapes  int
	Bytes   int64
}

func (Loaded) event()       {}
func (Assembled) event()    {}
func (GroupWritten) event() {}
