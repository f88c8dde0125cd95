package gridastar

import (
	"fmt"
	"math"
	"strings"
)

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to Coordinate) float64

// EstimateRemainingCost is the straight-line distance between two cells.
func EstimateRemainingCost(from, to Coordinate) float64 {
	dr := float64(from.Row - to.Row)
	dc := float64(from.Col - to.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

var (
	// Euclidean is the default heuristic.
	Euclidean Heuristic = EstimateRemainingCost

	// Chebyshev is the exact move count on an empty 8-connected grid with
	// unit cost. It never overestimates, so paths found with it are minimal.
	Chebyshev Heuristic = func(from, to Coordinate) float64 {
		return float64(max(abs(from.Row-to.Row), abs(from.Col-to.Col)))
	}
)

// HeuristicByName resolves "euclidean" or "chebyshev". An empty name selects Euclidean.
func HeuristicByName(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean":
		return Euclidean, nil
	case "chebyshev":
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}
