package viz

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/gridsketch/internal/export"
	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/render"
	"github.com/san-kum/gridsketch/internal/scene"
)

// footerLines is the height reserved below the canvas.
const footerLines = 3

type model struct {
	composer *scene.Composer
	exports  *export.Registry
	saveDir  string
	saveSize int

	seed   int64
	scene  *scene.Scene
	canvas string
	status string

	width  int
	height int
}

func newModel(c *scene.Composer, exports *export.Registry, saveDir string, saveSize int, seed int64) model {
	m := model{
		composer: c,
		exports:  exports,
		saveDir:  saveDir,
		saveSize: saveSize,
		width:    80,
		height:   24,
	}
	m.compose(seed)
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.compose(random.NewSeed())
		case "n", "right":
			m.compose(m.seed + 1)
		case "p", "left":
			m.compose(m.seed - 1)
		case "s":
			m.save()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.paint()
	}
	return m, nil
}

// side returns the canvas side in pixels that fits the terminal.
func (m model) side() int {
	rows := m.height - footerLines
	if rows < 1 {
		rows = 1
	}
	return max(1, min(m.width, rows*2))
}

func (m *model) compose(seed int64) {
	m.seed = seed
	m.scene = m.composer.Compose(float64(m.saveSize), random.New(seed))
	m.status = ""
	m.paint()
}

func (m *model) paint() {
	side := m.side()
	img := render.RenderImage(m.scene, side)
	m.canvas = FromImage(img, side, side/2).String()
}

func (m *model) save() {
	path := filepath.Join(m.saveDir, fmt.Sprintf("sketch_%d.png", m.seed))
	if err := m.exports.WriteFile(path, m.scene, m.saveSize); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.canvas)
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		Title.Render("gridsketch"),
		Metric("seed", fmt.Sprint(m.seed)),
		Metric("grid", fmt.Sprintf("%dx%d", m.scene.GridSize, m.scene.GridSize)),
		Metric("palette", m.scene.Palette),
		Metric("circles", fmt.Sprint(m.scene.Count(scene.Circle))),
		Metric("squares", fmt.Sprint(m.scene.Count(scene.Square))),
	}, "  "))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(Subtle.Render(m.status))
	} else {
		b.WriteString(KeyHint.Render("[r] reroll  [n/p] next/prev seed  [s] save png  [q] quit"))
	}
	return b.String()
}

// RunPreview shows seed's composition in the terminal until the user quits.
// Saved PNGs are saveSize pixels wide and land in saveDir.
func RunPreview(c *scene.Composer, exports *export.Registry, saveDir string, saveSize int, seed int64) error {
	_, err := tea.NewProgram(newModel(c, exports, saveDir, saveSize, seed), tea.WithAltScreen()).Run()
	return err
}
