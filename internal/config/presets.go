package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"dense": {
		Grid:   GridConfig{Min: 30, Max: 40},
		Shapes: ShapesConfig{CircleProbability: 0.8},
		Cells:  CellsConfig{Alpha: 180, MinSizeFactor: 0.5, MaxSizeFactor: 2.0},
	},
	"sparse": {
		Grid:   GridConfig{Min: 4, Max: 8},
		Shapes: ShapesConfig{CircleProbability: 0.8},
		Cells:  CellsConfig{Alpha: 180, MinSizeFactor: 0.3, MaxSizeFactor: 1.2},
	},
	"bubbles": {
		Grid:   GridConfig{Min: 8, Max: 24},
		Shapes: ShapesConfig{CircleProbability: 1.0},
		Cells:  CellsConfig{Alpha: 120, MinSizeFactor: 0.5, MaxSizeFactor: 3.0},
	},
	"blocks": {
		Grid:   GridConfig{Min: 6, Max: 20},
		Shapes: ShapesConfig{CircleProbability: 0.0},
		Cells:  CellsConfig{Alpha: 220, MinSizeFactor: 0.8, MaxSizeFactor: 1.0},
	},
	"ghost": {
		Grid:   GridConfig{Min: 10, Max: 30},
		Shapes: ShapesConfig{CircleProbability: 0.5},
		Cells:  CellsConfig{Alpha: 60, MinSizeFactor: 1.0, MaxSizeFactor: 3.0},
	},
}

// GetPreset returns a copy of the named preset filled with defaults for the
// fields it leaves unset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if p.Grid.Min > 0 {
		cfg.Grid = p.Grid
	}
	cfg.Shapes = p.Shapes
	if p.Cells.MaxSizeFactor > 0 {
		cfg.Cells = p.Cells
	}
	if p.Palette != "" {
		cfg.Palette = p.Palette
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
