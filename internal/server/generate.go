package server

import (
	"math/rand"

	"github.com/pdrpinto/gridastar"
)

const (
	defaultRows     = 24
	defaultCols     = 40
	defaultClusters = 8
	defaultWalk     = 200
	defaultDensity  = 0.25
)

// randomGrid builds clustered walls with random walks. source and destination
// are never walled.
func randomGrid(rng *rand.Rand, rows, cols, clusters, walk int, density float64, source, destination gridastar.Coordinate) (*gridastar.Grid, error) {
	g, err := gridastar.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	moves := [4]gridastar.Coordinate{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}
	for c := 0; c < clusters; c++ {
		p := gridastar.Coordinate{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		for s := 0; s < walk; s++ {
			if rng.Float64() < density && p != source && p != destination {
				_ = g.SetPassable(p, false)
			}
			if np := p.Add(moves[rng.Intn(len(moves))]); g.InBounds(np) {
				p = np
			}
		}
	}
	return g, nil
}

// randomEndpoints picks two distinct cells.
func randomEndpoints(rng *rand.Rand, rows, cols int) (gridastar.Coordinate, gridastar.Coordinate) {
	for {
		source := gridastar.Coordinate{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		destination := gridastar.Coordinate{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if source != destination || rows*cols == 1 {
			return source, destination
		}
	}
}
