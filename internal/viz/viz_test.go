package viz

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/san-kum/gridsketch/internal/export"
	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/scene"
)

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if y < 2 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}

	c := FromImage(img, 4, 2)
	if c.Width != 4 || c.Height != 2 {
		t.Fatalf("expected 4x2 canvas, got %dx%d", c.Width, c.Height)
	}
	if c.Upper[0][0] != red || c.Lower[0][0] != red {
		t.Errorf("top row should be red, got %v/%v", c.Upper[0][0], c.Lower[0][0])
	}
	if c.Upper[1][3] != blue || c.Lower[1][3] != blue {
		t.Errorf("bottom row should be blue, got %v/%v", c.Upper[1][3], c.Lower[1][3])
	}
}

func TestFromImageEmpty(t *testing.T) {
	c := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)), 3, 2)
	if c.Width != 3 || c.Height != 2 {
		t.Errorf("expected 3x2 canvas, got %dx%d", c.Width, c.Height)
	}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 2)
	green := color.RGBA{G: 255, A: 255}

	c.Set(1, 3, green)
	c.Set(-1, 0, green)
	c.Set(0, 4, green)

	if c.Lower[1][1] != green {
		t.Error("expected lower half of (1, 1) set")
	}
	if c.Upper[1][1] == green {
		t.Error("upper half should be untouched")
	}
}

func TestCanvasString(t *testing.T) {
	s := NewCanvas(3, 2).String()
	if got := strings.Count(s, "▀"); got != 6 {
		t.Errorf("expected 6 half blocks, got %d", got)
	}
	if got := strings.Count(s, "\n"); got != 1 {
		t.Errorf("expected 1 newline, got %d", got)
	}
}

func TestSwatches(t *testing.T) {
	reg := palette.NewRegistry(palette.Builtin()...)
	sel, _ := reg.Get("ocean")
	out := Swatches(sel)
	for _, name := range sel.ColorNames() {
		if !strings.Contains(out, name) {
			t.Errorf("swatches missing %q", name)
		}
	}

	if !strings.Contains(Swatches(palette.Default{}), "random") {
		t.Error("default selector should render as random colors")
	}
}

func testModel(t *testing.T) model {
	c := scene.NewComposer(scene.DefaultParams(), palette.NewRegistry(palette.Builtin()...), zerolog.Nop())
	return newModel(c, export.NewRegistry(), t.TempDir(), 64, 10)
}

func TestPreviewKeys(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = next.(model)
	if m.seed != 11 {
		t.Errorf("expected seed 11 after next, got %d", m.seed)
	}
	if m.scene.Seed != 11 {
		t.Errorf("scene seed not updated, got %d", m.scene.Seed)
	}

	prev, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = prev.(model)
	if m.seed != 10 {
		t.Errorf("expected seed 10 after prev, got %d", m.seed)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestPreviewResize(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 13})
	m = next.(model)

	if got := m.side(); got != 20 {
		t.Errorf("expected side 20, got %d", got)
	}
	if got := strings.Count(m.canvas, "▀"); got != 20*10 {
		t.Errorf("expected %d half blocks, got %d", 20*10, got)
	}
	if !strings.Contains(m.View(), "seed") {
		t.Error("view missing status line")
	}
}

func TestPreviewSave(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(model)

	path := filepath.Join(m.saveDir, "sketch_10.png")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	if !strings.Contains(m.status, "saved") {
		t.Errorf("unexpected status %q", m.status)
	}
}
