// Package optim searches seed ranges for compositions matching a target.
package optim

import (
	"context"
	"math"

	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/scene"
)

// Target describes the scene being looked for. Zero fields are ignored.
type Target struct {
	GridSize       int
	Palette        string
	Background     string // "black" or "white"
	CircleFraction float64
}

// Score is the distance of s from t; zero is a perfect match.
func (t Target) Score(s *scene.Scene) float64 {
	score := 0.0
	if t.GridSize > 0 {
		score += math.Abs(float64(s.GridSize - t.GridSize))
	}
	if t.Palette != "" && s.Palette != t.Palette {
		score += 100
	}
	if t.Background != "" {
		white := s.Background == scene.White
		if white != (t.Background == "white") {
			score += 100
		}
	}
	if t.CircleFraction > 0 && len(s.Cells) > 0 {
		frac := float64(s.Count(scene.Circle)) / float64(len(s.Cells))
		score += math.Abs(frac-t.CircleFraction) * 10
	}
	return score
}

type SeedSearch struct {
	composer   *scene.Composer
	canvasSize float64
}

func NewSeedSearch(c *scene.Composer, canvasSize float64) *SeedSearch {
	return &SeedSearch{composer: c, canvasSize: canvasSize}
}

// Search composes seeds [start, start+n) and returns the best-scoring one.
// It stops early on a perfect match or when ctx is done.
func (g *SeedSearch) Search(ctx context.Context, t Target, start int64, n int) (int64, float64, error) {
	best := math.Inf(1)
	bestSeed := start

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return bestSeed, best, err
		}
		seed := start + int64(i)
		val := t.Score(g.composer.Compose(g.canvasSize, random.New(seed)))
		if val < best {
			best, bestSeed = val, seed
		}
		if best == 0 {
			break
		}
	}
	return bestSeed, best, nil
}
