// Package experiment composes many scenes from consecutive seeds.
package experiment

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/san-kum/gridsketch/internal/export"
	"github.com/san-kum/gridsketch/internal/random"
	"github.com/san-kum/gridsketch/internal/scene"
	"golang.org/x/sync/errgroup"
)

type Ensemble struct {
	composer   *scene.Composer
	canvasSize float64
	numRuns    int
	seedStart  int64
	// Workers bounds concurrent compositions; zero means GOMAXPROCS.
	Workers int
}

func NewEnsemble(c *scene.Composer, canvasSize float64, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{composer: c, canvasSize: canvasSize, numRuns: numRuns, seedStart: seedStart}
}

// Run composes one scene per seed in [seedStart, seedStart+numRuns). Results
// are indexed by seed offset.
func (e *Ensemble) Run(ctx context.Context) ([]*scene.Scene, error) {
	return e.each(ctx, func(context.Context, int, *scene.Scene) error { return nil })
}

// Batch composes an ensemble and writes each scene to
// Dir/sketch_<seed>.<Format>.
type Batch struct {
	Ensemble *Ensemble
	Exports  *export.Registry
	Dir      string
	Format   string
	Size     int
}

func (b *Batch) Run(ctx context.Context) ([]string, error) {
	if _, err := b.Exports.Get(b.Format); err != nil {
		return nil, err
	}
	paths := make([]string, b.Ensemble.numRuns)
	_, err := b.Ensemble.each(ctx, func(ctx context.Context, i int, s *scene.Scene) error {
		path := filepath.Join(b.Dir, fmt.Sprintf("sketch_%d.%s", s.Seed, b.Format))
		if err := b.Exports.WriteFile(path, s, b.Size); err != nil {
			return err
		}
		paths[i] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (e *Ensemble) each(ctx context.Context, fn func(context.Context, int, *scene.Scene) error) ([]*scene.Scene, error) {
	if e.numRuns < 0 {
		return nil, fmt.Errorf("%w: negative run count %d", scene.ErrInvalidParams, e.numRuns)
	}
	results := make([]*scene.Scene, e.numRuns)

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < e.numRuns; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := e.composer.Compose(e.canvasSize, random.New(e.seedStart+int64(i)))
			results[i] = s
			return fn(gctx, i, s)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
