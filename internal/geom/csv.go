package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strings"
)

// LoadAssignments reads a CSV table mapping placemark ids to group labels.
// Column detection: id|geoid|key and group|label|name (case-insensitive).
// An id listed on several rows is assigned to every label, in row order.
func LoadAssignments(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	header := recs[0]
	idxID, idxGroup := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id", "geoid", "key":
			if idxID == -1 {
				idxID = i
			}
		case "group", "label", "name":
			if idxGroup == -1 {
				idxGroup = i
			}
		}
	}
	if idxID == -1 || idxGroup == -1 {
		return nil, errors.New("csv: id/group columns not found")
	}
	out := make(map[string][]string)
	for _, row := range recs[1:] {
		if idxID >= len(row) || idxGroup >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idxID])
		group := strings.TrimSpace(row[idxGroup])
		if id == "" || group == "" {
			continue
		}
		out[id] = append(out[id], group)
	}
	if len(out) == 0 {
		return nil, errors.New("csv: no assignments parsed")
	}
	return out, nil
}
