package config

import "fmt"

// Overrides holds values set explicitly on the command line. Nil fields were
// not set and leave the resolved config alone.
type Overrides struct {
	Seed              *int64
	Size              *int
	Palette           *string
	CircleProbability *float64
	Alpha             *int
	MinGrid           *int
	MaxGrid           *int
	DataDir           string
}

// Resolve builds the effective config: defaults, then the named preset, then
// the fields present in the config file, then the overrides.
func Resolve(preset, path string, o Overrides) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		cfg = GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, ListPresets())
		}
	}

	if path != "" {
		var err error
		cfg, err = LoadOnto(cfg, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.Size != nil {
		cfg.Canvas = CanvasConfig{Size: *o.Size}
	}
	if o.Palette != nil {
		cfg.Palette = *o.Palette
	}
	if o.CircleProbability != nil {
		cfg.Shapes.CircleProbability = *o.CircleProbability
	}
	if o.Alpha != nil {
		cfg.Cells.Alpha = *o.Alpha
	}
	if o.MinGrid != nil {
		cfg.Grid.Min = *o.MinGrid
	}
	if o.MaxGrid != nil {
		cfg.Grid.Max = *o.MaxGrid
	}
	if o.DataDir != "" {
		cfg.DataDir = o.DataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
