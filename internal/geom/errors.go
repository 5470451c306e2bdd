package geom

import "fmt"

// ErrMissingID indicates a placemark without the configured id attribute.
type ErrMissingID struct {
	Attr  string
	Index int // position of the placemark in the document
}

func (e *ErrMissingID) Error() string {
	return fmt.Sprintf("placemark %d: missing id attribute %q", e.Index, e.Attr)
}

// ErrExtruded indicates a polygon whose extrude flag is set.
type ErrExtruded struct {
	ID    string
	Value string
}

func (e *ErrExtruded) Error() string {
	return fmt.Sprintf("placemark %s: extrude is set (%q)", e.ID, e.Value)
}

// ErrInvalidVertex indicates a coordinate tuple that is not "lng,lat[,alt]".
type ErrInvalidVertex struct {
	ID     string
	Token  string
	Reason string
}

func (e *ErrInvalidVertex) Error() string {
	return fmt.Sprintf("placemark %s: invalid vertex %q: %s", e.ID, e.Token, e.Reason)
}
