package generator

import "fmt"

// ErrInvalidGroupName indicates a label that cannot be used as a file name.
type ErrInvalidGroupName struct {
	Name string
	ID   string // placemark that produced the label
}

func (e *ErrInvalidGroupName) Error() string {
	return fmt.Sprintf("placemark %s: group name %q is not a valid file name", e.ID, e.Name)
}
