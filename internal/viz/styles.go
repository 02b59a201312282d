package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gridsketch/internal/palette"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Swatches renders a selector's colors as labeled blocks on one line.
func Swatches(sel palette.Selector) string {
	p, ok := sel.(*palette.Palette)
	if !ok {
		return Subtle.Render("random colors")
	}
	names := p.ColorNames()
	parts := make([]string, 0, len(names))
	for i, c := range p.Colors() {
		block := lipgloss.NewStyle().Background(lipgloss.Color(palette.Hex(c))).Render("    ")
		parts = append(parts, block+" "+MetricLabel.Render(names[i]))
	}
	return strings.Join(parts, "  ")
}

// Metric renders "label value" in the metric styles.
func Metric(label, value string) string {
	return MetricLabel.Render(label) + " " + MetricValue.Render(value)
}
