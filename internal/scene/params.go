package scene

import "fmt"

const (
	DefaultMinGrid           = 4
	DefaultMaxGrid           = 40
	DefaultCircleProbability = 0.8
	DefaultAlpha             = 180
	DefaultMinSizeFactor     = 0.5
	DefaultMaxSizeFactor     = 2.0
)

// Params are the aesthetic knobs of a composition. Size factors are relative
// to the cell size.
type Params struct {
	MinGrid           int
	MaxGrid           int
	CircleProbability float64
	Alpha             uint8
	MinSizeFactor     float64
	MaxSizeFactor     float64
	// Palette forces a named selector; empty picks one at random.
	Palette string
}

func DefaultParams() Params {
	return Params{
		MinGrid:           DefaultMinGrid,
		MaxGrid:           DefaultMaxGrid,
		CircleProbability: DefaultCircleProbability,
		Alpha:             DefaultAlpha,
		MinSizeFactor:     DefaultMinSizeFactor,
		MaxSizeFactor:     DefaultMaxSizeFactor,
	}
}

func (p Params) Validate() error {
	switch {
	case p.MinGrid < 1:
		return fmt.Errorf("%w: min grid %d must be at least 1", ErrInvalidParams, p.MinGrid)
	case p.MaxGrid < p.MinGrid:
		return fmt.Errorf("%w: max grid %d below min grid %d", ErrInvalidParams, p.MaxGrid, p.MinGrid)
	case p.CircleProbability < 0 || p.CircleProbability > 1:
		return fmt.Errorf("%w: circle probability %v outside [0, 1]", ErrInvalidParams, p.CircleProbability)
	case p.MinSizeFactor < 0:
		return fmt.Errorf("%w: min size factor %v is negative", ErrInvalidParams, p.MinSizeFactor)
	case p.MaxSizeFactor < p.MinSizeFactor:
		return fmt.Errorf("%w: max size factor %v below min size factor %v", ErrInvalidParams, p.MaxSizeFactor, p.MinSizeFactor)
	}
	return nil
}
