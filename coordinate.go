package gridastar

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate identifies a grid cell by row and column.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// neighborOffsets lists the 8 moves in row-major order.
var neighborOffsets = [8]Coordinate{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Add returns the component-wise sum of c and other.
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// IsAdjacent reports whether other is one 8-connected move away from c.
func (c Coordinate) IsAdjacent(other Coordinate) bool {
	dr, dc := abs(c.Row-other.Row), abs(c.Col-other.Col)
	return max(dr, dc) == 1
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ParseCoordinate parses "row,col", optionally wrapped in parentheses.
func ParseCoordinate(s string) (Coordinate, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid coordinate row %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid coordinate col %q: %w", s, err)
	}
	return Coordinate{Row: row, Col: col}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
