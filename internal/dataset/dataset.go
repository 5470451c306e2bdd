// Package dataset holds named presets for well-known input files: the id
// attribute, assignment and the point translation to apply.
package dataset

import (
	"fmt"
	"sort"

	"geosvg/internal/generator"
)

// Preset bundles the collaborators used to render one kind of input.
type Preset struct {
	Name         string
	Description  string
	SourceIDAttr string
	Assigner     generator.Assigner
	Translator   generator.Translator
	Filter       generator.Filter
}

// Options returns the generator options for the preset, starting from base.
func (p Preset) Options(base generator.Options) generator.Options {
	if p.SourceIDAttr != "" {
		base.SourceIDAttr = p.SourceIDAttr
	}
	return base
}

// GeneratorOptions returns the optional collaborators the preset sets.
func (p Preset) GeneratorOptions() []generator.Option {
	var opts []generator.Option
	if p.Translator != nil {
		opts = append(opts, generator.WithTranslator(p.Translator))
	}
	if p.Filter != nil {
		opts = append(opts, generator.WithFilter(p.Filter))
	}
	return opts
}

// ErrUnknownDataset is returned by Lookup for an unregistered name.
type ErrUnknownDataset struct {
	Name string
}

func (e *ErrUnknownDataset) Error() string {
	return fmt.Sprintf("unknown dataset %q", e.Name)
}

var presets = map[string]Preset{
	CountryCounties: {
		Name:         CountryCounties,
		Description:  "US counties in one document, with Alaska, Hawaii and the territories moved near the lower 48",
		SourceIDAttr: "GEOID",
		Assigner:     generator.Constant("us"),
		Translator:   TranslateUSCounty,
	},
	StateCounties: {
		Name:         StateCounties,
		Description:  "US counties, one document per state keyed by STATEFP",
		SourceIDAttr: "GEOID",
		Assigner:     generator.ByAttribute("STATEFP"),
	},
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, &ErrUnknownDataset{Name: name}
	}
	return p, nil
}

// Names lists the registered presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
