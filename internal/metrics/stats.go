// Package metrics summarizes composed scenes.
package metrics

import (
	"math"

	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/scene"
)

type Stats struct {
	Scenes         int     `json:"scenes"`
	Cells          int     `json:"cells"`
	Circles        int     `json:"circles"`
	Squares        int     `json:"squares"`
	CircleFraction float64 `json:"circle_fraction"`
	// Sizes are relative to each scene's cell size so scenes of different
	// grids can be merged.
	MinSize  float64 `json:"min_size"`
	MaxSize  float64 `json:"max_size"`
	MeanSize float64 `json:"mean_size"`
	// WhiteBackgrounds counts scenes painted on white.
	WhiteBackgrounds int            `json:"white_backgrounds"`
	Palettes         map[string]int `json:"palettes"`
}

// Compute returns the stats of a single scene.
func Compute(s *scene.Scene) Stats {
	st := Stats{
		Scenes:   1,
		Cells:    len(s.Cells),
		MinSize:  math.Inf(1),
		MaxSize:  math.Inf(-1),
		Palettes: map[string]int{s.Palette: 1},
	}
	if s.Background == scene.White {
		st.WhiteBackgrounds = 1
	}

	sum := 0.0
	for _, c := range s.Cells {
		switch c.Shape {
		case scene.Circle:
			st.Circles++
		case scene.Square:
			st.Squares++
		}
		rel := relSize(s, c)
		st.MinSize = math.Min(st.MinSize, rel)
		st.MaxSize = math.Max(st.MaxSize, rel)
		sum += rel
	}
	if st.Cells > 0 {
		st.CircleFraction = float64(st.Circles) / float64(st.Cells)
		st.MeanSize = sum / float64(st.Cells)
	} else {
		st.MinSize, st.MaxSize = 0, 0
	}
	return st
}

// Aggregate merges per-scene stats, weighting by cell count.
func Aggregate(all []Stats) Stats {
	out := Stats{MinSize: math.Inf(1), MaxSize: math.Inf(-1), Palettes: map[string]int{}}
	sum := 0.0
	for _, st := range all {
		if st.Cells == 0 {
			continue
		}
		out.Scenes += st.Scenes
		out.Cells += st.Cells
		out.Circles += st.Circles
		out.Squares += st.Squares
		out.WhiteBackgrounds += st.WhiteBackgrounds
		out.MinSize = math.Min(out.MinSize, st.MinSize)
		out.MaxSize = math.Max(out.MaxSize, st.MaxSize)
		sum += st.MeanSize * float64(st.Cells)
		for name, n := range st.Palettes {
			out.Palettes[name] += n
		}
	}
	if out.Cells == 0 {
		out.MinSize, out.MaxSize = 0, 0
		return out
	}
	out.CircleFraction = float64(out.Circles) / float64(out.Cells)
	out.MeanSize = sum / float64(out.Cells)
	return out
}

// SizeHistogram buckets relative cell sizes over [lo, hi] into bins counts,
// normalized to fractions of all cells.
func SizeHistogram(scenes []*scene.Scene, lo, hi float64, bins int) []float64 {
	hist := make([]float64, bins)
	if bins == 0 || hi <= lo {
		return hist
	}
	total := 0
	width := (hi - lo) / float64(bins)
	for _, s := range scenes {
		for _, c := range s.Cells {
			idx := int((relSize(s, c) - lo) / width)
			if idx < 0 {
				idx = 0
			}
			if idx >= bins {
				idx = bins - 1
			}
			hist[idx]++
			total++
		}
	}
	if total > 0 {
		for i := range hist {
			hist[i] /= float64(total)
		}
	}
	return hist
}

// ColorUsage counts cells per hex color, ignoring alpha.
func ColorUsage(s *scene.Scene) map[string]int {
	usage := make(map[string]int)
	for _, c := range s.Cells {
		usage[palette.Hex(c.Color)]++
	}
	return usage
}

func relSize(s *scene.Scene, c scene.Cell) float64 {
	if s.CellSize == 0 {
		return 0
	}
	return c.Size / s.CellSize
}
