package gui

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/san-kum/gridsketch/internal/export"
	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/render"
	"github.com/san-kum/gridsketch/internal/scene"
)

// fallbackSize is used when the monitor reports no usable size.
const fallbackSize = 800

type App struct {
	Composer *scene.Composer
	Exports  *export.Registry
	Log      zerolog.Logger
	// Size is the square window side; zero fits the current monitor.
	Size    int
	Seed    int64
	SaveDir string

	scene     *scene.Scene
	renderer  *render.Renderer
	surface   surface
	status    string
	statusTTL int
}

// initWindow opens a square window of the configured side, or the largest
// square fitting the monitor.
func (a *App) initWindow() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(fallbackSize, fallbackSize, "gridsketch")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	if a.Size <= 0 {
		m := rl.GetCurrentMonitor()
		side := int(scene.CanvasSize(float64(rl.GetMonitorWidth(m)), float64(rl.GetMonitorHeight(m))))
		if side <= 0 {
			side = fallbackSize
		}
		a.Size = side
	}
	rl.SetWindowSize(a.Size, a.Size)
}

// Setup runs once before any frame: it opens the window and composes the
// scene.
func (a *App) Setup() {
	a.initWindow()
	a.compose(a.Seed)
}

func (a *App) compose(seed int64) {
	a.Seed = seed
	a.scene = a.Composer.Compose(float64(a.Size), random.New(seed))
	a.renderer = render.New(a.scene)
	rl.SetWindowTitle(fmt.Sprintf("gridsketch :: seed %d :: %s", seed, a.scene.Palette))
	a.Log.Info().Int64("seed", seed).Int("grid", a.scene.GridSize).Msg("composed")
}

// Run opens the window and repaints the scene every frame until the window
// is closed.
func (a *App) Run() {
	a.Setup()
	defer rl.CloseWindow()
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and reports false when the app should quit.
func (a *App) Update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return false
	case rl.IsKeyPressed(rl.KeyR):
		a.compose(random.NewSeed())
	case rl.IsKeyPressed(rl.KeyRight):
		a.compose(a.Seed + 1)
	case rl.IsKeyPressed(rl.KeyLeft):
		a.compose(a.Seed - 1)
	case rl.IsKeyPressed(rl.KeyS):
		a.save()
	}
	if a.statusTTL > 0 {
		a.statusTTL--
	}
	return true
}

func (a *App) save() {
	path := filepath.Join(a.SaveDir, fmt.Sprintf("sketch_%d.png", a.Seed))
	if err := a.Exports.WriteFile(path, a.scene, a.Size); err != nil {
		a.Log.Error().Err(err).Msg("save failed")
		a.status = "SAVE FAILED"
	} else {
		a.Log.Info().Str("path", path).Msg("saved")
		a.status = "SAVED " + path
	}
	a.statusTTL = 120
}

func (a *App) Draw() {
	rl.BeginDrawing()
	a.renderer.Draw(a.surface)
	if a.statusTTL > 0 {
		a.drawStatus()
	}
	rl.EndDrawing()
}

func (a *App) drawStatus() {
	fg := rl.White
	bg := rl.NewColor(0, 0, 0, 160)
	if a.scene.Background == scene.White {
		fg, bg = rl.Black, rl.NewColor(255, 255, 255, 160)
	}
	rl.DrawRectangle(0, int32(a.Size)-28, int32(a.Size), 28, bg)
	rl.DrawText(a.status, 10, int32(a.Size)-22, 16, fg)
}
