package scene

import (
	"github.com/rs/zerolog"
	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/random"
)

type Composer struct {
	params   Params
	registry *palette.Registry
	log      zerolog.Logger
}

// NewComposer returns a composer drawing colors from registry. A nil registry
// behaves like an empty one.
func NewComposer(params Params, registry *palette.Registry, log zerolog.Logger) *Composer {
	if registry == nil {
		registry = palette.NewRegistry()
	}
	return &Composer{params: params, registry: registry, log: log}
}

// Params returns the parameters scenes are composed with.
func (c *Composer) Params() Params { return c.params }

// Compose lays out a full grid on a square canvas of side canvasSize. The
// order of random draws is fixed, so a seeded source reproduces the scene.
func (c *Composer) Compose(canvasSize float64, r random.Source) *Scene {
	gridSize := r.Int(c.params.MinGrid, c.params.MaxGrid)
	cellSize := canvasSize / float64(gridSize)

	background := Black
	if r.Bool(0.5) {
		background = White
	}

	sel := c.selector(r)

	s := &Scene{
		CanvasSize: canvasSize,
		GridSize:   gridSize,
		CellSize:   cellSize,
		Background: background,
		Palette:    sel.Name(),
		Cells:      make([]Cell, 0, gridSize*gridSize),
	}
	if seeded, ok := r.(interface{ Seed() int64 }); ok {
		s.Seed = seeded.Seed()
	}

	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			cell := Cell{
				X:     float64(col)*cellSize + cellSize/2,
				Y:     float64(row)*cellSize + cellSize/2,
				Size:  r.Float(cellSize*c.params.MinSizeFactor, cellSize*c.params.MaxSizeFactor),
				Shape: Square,
			}
			if r.Bool(c.params.CircleProbability) {
				cell.Shape = Circle
			}
			cell.Color = sel.Color(r)
			cell.Color.A = c.params.Alpha
			s.Cells = append(s.Cells, cell)
		}
	}

	c.log.Debug().
		Int("grid", gridSize).
		Float64("cell_size", cellSize).
		Int("circles", s.Count(Circle)).
		Int("squares", s.Count(Square)).
		Msg("scene composed")

	return s
}

func (c *Composer) selector(r random.Source) palette.Selector {
	var (
		sel palette.Selector
		ok  bool
	)
	if c.params.Palette != "" {
		sel, ok = c.registry.Get(c.params.Palette)
		if !ok {
			c.log.Warn().Str("palette", c.params.Palette).Msg("unknown palette, picking at random")
		}
	}
	if !ok {
		sel, ok = c.registry.Random(r)
	}
	if !ok {
		c.log.Info().Msg("no palette selectors registered, using default colors")
		return palette.Default{}
	}

	c.log.Info().
		Bool("palette_mode", sel.HasPalette()).
		Str("selector", sel.Name()).
		Strs("colors", sel.ColorNames()).
		Msg("palette selected")
	return sel
}
