package gridastar

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrNilGrid           = errors.New("grid is nil")
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrInvalidCell       = errors.New("invalid cell value")
	ErrRaggedGrid        = errors.New("grid rows have different lengths")
)

// Grid is a fixed-size rectangular occupancy grid.
// Cells are stored row-major; true means passable.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates a rows×cols grid with every cell passable.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, rows, cols)
	}
	cells := make([]bool, rows*cols)
	for i := range cells {
		cells[i] = true
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// GridFromRows builds a grid from a 0/1 matrix, 1 being passable and 0 blocked.
func GridFromRows(matrix [][]int) (*Grid, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidDimensions)
	}
	g, err := NewGrid(len(matrix), len(matrix[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range matrix {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(row), g.cols)
		}
		for c, v := range row {
			switch v {
			case 0:
				g.cells[r*g.cols+c] = false
			case 1:
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, r, c)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Area returns rows*cols.
func (g *Grid) Area() int { return g.rows * g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsPassable reports whether c is inside the grid and not blocked.
func (g *Grid) IsPassable(c Coordinate) bool {
	return g.InBounds(c) && g.cells[g.index(c)]
}

// SetPassable marks c as passable or blocked.
func (g *Grid) SetPassable(c Coordinate, passable bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	g.cells[g.index(c)] = passable
	return nil
}

// Rows2D returns a 0/1 copy of the grid.
func (g *Grid) Rows2D() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			if g.cells[r*g.cols+c] {
				out[r][c] = 1
			}
		}
	}
	return out
}

// String renders the grid with '.' for passable and '#' for blocked cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

func (g *Grid) coordinate(index int) Coordinate {
	return Coordinate{Row: index / g.cols, Col: index % g.cols}
}
