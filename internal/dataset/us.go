package dataset

import "github.com/paulmach/orb"

// Preset names.
const (
	CountryCounties = "country-counties"
	StateCounties   = "state-counties"
)

// TranslateUSCounty relocates a county point so the whole country fits a
// compact canvas. Points east of 25° are wrapped west by a full turn first,
// which keeps the Aleutians next to the rest of Alaska. Alaska is then
// shrunk, and Hawaii and the territories are shifted (and some scaled) into
// the empty space south of the lower 48. The state FIPS prefix of the
// GEOID selects the move.
func TranslateUSCounty(p orb.Point, id string, _ []string) orb.Point {
	lng, lat := p.Lon(), p.Lat()
	if lng > 25 {
		lng -= 360
	}

	switch statePrefix(id) {
	case "02": // Alaska
		lat *= 0.25
		lng *= 0.15
		lng -= 93
		lat += 12.5
	case "15": // Hawaii
		lat += 6
		lng += 50
	case "60": // American Samoa
		switch id {
		case "60020":
			lng -= 0.75
		case "60030":
			lat += 0.2
			lng -= 1.9
		case "60040":
			lat -= 3
			lng += 0.4
		}
		lat = (lat+14)*4 + 25
		lng = (lng+170)*4 - 88
	case "66": // Guam
		lat = (lat-13.3)*2 + 24
		lng = (lng+200)*2 - 64.5
	case "69": // Northern Mariana Islands
		lat = (lat-16)/3 + 25.5
		lng = (lng+213)/3 - 94
	case "72": // Puerto Rico
		lat = lat*3 - 28
		lng = lng*3 + 111
	case "78": // US Virgin Islands
		if id == "78020" || id == "78030" {
			lat -= 0.3
		}
		lat = (lat-17)*2 + 22
		lng = (lng+64)*2 - 83
	}
	return orb.Point{lng, lat}
}

func statePrefix(id string) string {
	if len(id) < 2 {
		return id
	}
	return id[:2]
}
