package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/san-kum/gridsketch/internal/config"
	"github.com/san-kum/gridsketch/internal/export"
	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/scene"
	"gopkg.in/yaml.v3"
)

// Script defines a scripted gallery of renders
type Script struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Jobs        []Job   `yaml:"jobs"`
	Sweeps      []Sweep `yaml:"sweeps"`
}

// Job renders a single scene
type Job struct {
	Seed    int64  `yaml:"seed"`
	Preset  string `yaml:"preset"`
	Palette string `yaml:"palette"`
	Size    int    `yaml:"size"`
	Output  string `yaml:"output"`
}

// Sweep renders one seed across evenly spaced values of a parameter.
// Output must contain a %d verb for the step index.
type Sweep struct {
	Param  string  `yaml:"param"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Steps  int     `yaml:"steps"`
	Seed   int64   `yaml:"seed"`
	Preset string  `yaml:"preset"`
	Size   int     `yaml:"size"`
	Output string  `yaml:"output"`
}

// LoadScript loads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}

	return &script, nil
}

// Runner executes scripts against a base configuration. Relative outputs are
// resolved against Dir.
type Runner struct {
	Base    *config.Config
	Exports *export.Registry
	Dir     string
	Log     zerolog.Logger
}

// Run executes every job and then every sweep, returning the written paths.
func (r *Runner) Run(ctx context.Context, script *Script) ([]string, error) {
	var written []string

	for i, job := range script.Jobs {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path, err := r.runJob(job)
		if err != nil {
			return written, fmt.Errorf("job %d: %w", i+1, err)
		}
		r.Log.Info().Int("job", i+1).Int("of", len(script.Jobs)).Str("path", path).Msg("rendered")
		written = append(written, path)
	}

	for i, sweep := range script.Sweeps {
		paths, err := r.runSweep(ctx, sweep)
		written = append(written, paths...)
		if err != nil {
			return written, fmt.Errorf("sweep %d: %w", i+1, err)
		}
	}

	return written, nil
}

func (r *Runner) runJob(job Job) (string, error) {
	if job.Output == "" {
		return "", fmt.Errorf("missing output")
	}
	cfg, err := r.config(job.Preset)
	if err != nil {
		return "", err
	}
	if job.Palette != "" {
		cfg.Palette = job.Palette
	}
	seed := job.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}
	return r.render(cfg, seed, job.Size, job.Output)
}

func (r *Runner) runSweep(ctx context.Context, sweep Sweep) ([]string, error) {
	if sweep.Steps < 1 {
		return nil, fmt.Errorf("%w: sweep needs at least one step", scene.ErrInvalidParams)
	}
	if !strings.Contains(sweep.Output, "%d") {
		return nil, fmt.Errorf("sweep output %q needs a %%d verb", sweep.Output)
	}
	seed := sweep.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}

	step := 0.0
	if sweep.Steps > 1 {
		step = (sweep.Max - sweep.Min) / float64(sweep.Steps-1)
	}

	paths := make([]string, 0, sweep.Steps)
	for i := 0; i < sweep.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		cfg, err := r.config(sweep.Preset)
		if err != nil {
			return paths, err
		}
		value := sweep.Min + float64(i)*step
		if err := SetParam(cfg, sweep.Param, value); err != nil {
			return paths, err
		}
		path, err := r.render(cfg, seed, sweep.Size, fmt.Sprintf(sweep.Output, i))
		if err != nil {
			return paths, err
		}
		r.Log.Info().Str("param", sweep.Param).Float64("value", value).Str("path", path).Msg("sweep step")
		paths = append(paths, path)
	}
	return paths, nil
}

// SetParam assigns a numeric composition parameter by its YAML name.
func SetParam(cfg *config.Config, name string, v float64) error {
	switch name {
	case "circle_probability":
		cfg.Shapes.CircleProbability = v
	case "alpha":
		cfg.Cells.Alpha = int(v)
	case "min_size_factor":
		cfg.Cells.MinSizeFactor = v
	case "max_size_factor":
		cfg.Cells.MaxSizeFactor = v
	case "grid":
		cfg.Grid.Min, cfg.Grid.Max = int(v), int(v)
	default:
		return fmt.Errorf("%w: unknown sweep param %q", scene.ErrInvalidParams, name)
	}
	return cfg.Validate()
}

func (r *Runner) config(preset string) (*config.Config, error) {
	if preset == "" {
		cp := *r.Base
		return &cp, nil
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	cfg.Palettes = r.Base.Palettes
	cfg.Canvas = r.Base.Canvas
	return cfg, nil
}

func (r *Runner) render(cfg *config.Config, seed int64, size int, output string) (string, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return "", err
	}
	if size <= 0 {
		size = cfg.CanvasSize()
	}
	composer := scene.NewComposer(cfg.Params(), reg, r.Log)
	s := composer.Compose(float64(size), random.New(seed))

	path := output
	if !filepath.IsAbs(path) && r.Dir != "" {
		path = filepath.Join(r.Dir, path)
	}
	if err := r.Exports.WriteFile(path, s, size); err != nil {
		return "", err
	}
	return path, nil
}
