package scene

import (
	"fmt"
	"image/color"
)

type Shape int

const (
	Circle Shape = iota
	Square
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

func (s Shape) MarshalText() ([]byte, error) {
	if s != Circle && s != Square {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) error {
	switch string(b) {
	case "circle":
		*s = Circle
	case "square":
		*s = Square
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, string(b))
	}
	return nil
}

// Cell is the render attributes of one grid unit. X and Y are the shape
// center; Size is the circle diameter or the square side. Color carries
// straight (non-premultiplied) alpha.
type Cell struct {
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Size  float64     `json:"size"`
	Shape Shape       `json:"shape"`
	Color color.NRGBA `json:"color"`
}

var (
	Black = color.NRGBA{A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Scene is a finished composition. Cells are stored row-major, which is also
// the paint order.
type Scene struct {
	Seed       int64       `json:"seed"`
	CanvasSize float64     `json:"canvas_size"`
	GridSize   int         `json:"grid_size"`
	CellSize   float64     `json:"cell_size"`
	Background color.NRGBA `json:"background"`
	Palette    string      `json:"palette"`
	Cells      []Cell      `json:"cells"`
}

// Cell returns the cell at (row, col). It panics outside the grid.
func (s *Scene) Cell(row, col int) Cell {
	if row < 0 || col < 0 || row >= s.GridSize || col >= s.GridSize {
		panic(fmt.Sprintf("scene: cell (%d, %d) outside %dx%d grid", row, col, s.GridSize, s.GridSize))
	}
	return s.Cells[row*s.GridSize+col]
}

// Count returns how many cells have the given shape.
func (s *Scene) Count(shape Shape) int {
	n := 0
	for _, c := range s.Cells {
		if c.Shape == shape {
			n++
		}
	}
	return n
}

// CanvasSize returns the side of the largest square fitting width x height.
func CanvasSize(width, height float64) float64 {
	return min(width, height)
}
