package dataset

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosvg/internal/generator"
	"geosvg/internal/geom"
)

func TestTranslateUSCounty(t *testing.T) {
	tests := []struct {
		name string
		id   string
		in   orb.Point
		want orb.Point
	}{
		{"lower 48 untouched", "06037", orb.Point{-118, 34}, orb.Point{-118, 34}},
		{"alaska", "02013", orb.Point{-160, 60}, orb.Point{-117, 27.5}},
		{"aleutians wrap", "02016", orb.Point{179, 52}, orb.Point{-120.15, 25.5}},
		{"hawaii", "15001", orb.Point{-155, 19.5}, orb.Point{-105, 25.5}},
		{"american samoa swains", "60020", orb.Point{-170.7, -14.3}, orb.Point{-93.8, 23.8}},
		{"american samoa manua", "60030", orb.Point{-168, -14.2}, orb.Point{-87.6, 25}},
		{"guam", "66010", orb.Point{144.8, 13.5}, orb.Point{-94.9, 24.4}},
		{"northern marianas", "69110", orb.Point{145.7, 15.2}, orb.Point{-94 - 1.3/3, 25.5 - 0.8/3}},
		{"puerto rico", "72001", orb.Point{-66, 18}, orb.Point{-87, 26}},
		{"virgin islands st john", "78020", orb.Point{-64.8, 18.3}, orb.Point{-84.6, 24}},
		{"virgin islands st croix", "78010", orb.Point{-64.8, 17.7}, orb.Point{-84.6, 23.4}},
		{"short id", "7", orb.Point{-70, 40}, orb.Point{-70, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateUSCounty(tt.in, tt.id, []string{"us"})
			assert.InDelta(t, tt.want.Lon(), got.Lon(), 1e-9, "lng")
			assert.InDelta(t, tt.want.Lat(), got.Lat(), 1e-9, "lat")
		})
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(CountryCounties)
	require.NoError(t, err)
	assert.Equal(t, []string{"us"}, p.Assigner.Assign(&geom.Placemark{ID: "06037"}))
	assert.Len(t, p.GeneratorOptions(), 1)

	opts := p.Options(generator.Options{SourceIDAttr: "NAME"})
	assert.Equal(t, "GEOID", opts.SourceIDAttr)

	p, err = Lookup(StateCounties)
	require.NoError(t, err)
	got := p.Assigner.Assign(&geom.Placemark{ID: "25025", Data: map[string]string{"STATEFP": "25"}})
	assert.Equal(t, []string{"25"}, got)
	assert.Empty(t, p.GeneratorOptions())

	_, err = Lookup("world")
	var unknown *ErrUnknownDataset
	assert.True(t, errors.As(err, &unknown))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{CountryCounties, StateCounties}, Names())
}
