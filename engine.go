package gridastar

import (
	"container/heap"
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// engine runs one A* search. Search drives it to completion, Stepper drives
// it one expansion at a time.
type engine struct {
	grid        *Grid
	source      Coordinate
	destination Coordinate
	heuristic   Heuristic

	state     *searchState
	openSet   frontier
	nextOrder uint64

	expanded int
	current  Coordinate
	done     bool
	result   Result
	err      error
}

// newEngine validates the endpoints. A blocked or out-of-bounds endpoint
// yields an engine that is already done.
func newEngine(grid *Grid, source, destination Coordinate, heuristic Heuristic) (*engine, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	e := &engine{
		grid:        grid,
		source:      source,
		destination: destination,
		heuristic:   heuristic,
		current:     source,
	}

	if err := e.checkEndpoint("source", source); err != nil {
		e.finish(Result{Outcome: OutcomeBlocked}, err)
		return e, nil
	}
	if err := e.checkEndpoint("destination", destination); err != nil {
		e.finish(Result{Outcome: OutcomeBlocked}, err)
		return e, nil
	}
	if source == destination {
		e.finish(Result{Outcome: OutcomeFound, Path: []Coordinate{source}}, nil)
		return e, nil
	}

	e.state = newSearchState(grid.Area())
	root := grid.index(source)
	e.state.setRoot(root)
	e.openSet = make(frontier, 0, 16)
	heap.Init(&e.openSet)
	e.push(root, 0)
	return e, nil
}

func (e *engine) checkEndpoint(name string, c Coordinate) error {
	if !e.grid.InBounds(c) {
		return fmt.Errorf("%w: %s %v: %w", ErrBlockedEndpoint, name, c, ErrOutOfBounds)
	}
	if !e.grid.IsPassable(c) {
		return fmt.Errorf("%w: %s %v", ErrBlockedEndpoint, name, c)
	}
	return nil
}

func (e *engine) push(cell int, f float64) {
	heap.Push(&e.openSet, &frontierItem{Cell: cell, FCost: f, Order: e.nextOrder})
	e.nextOrder++
}

// popLive removes stale entries and returns the next live one, or nil.
func (e *engine) popLive() *frontierItem {
	for e.openSet.Len() > 0 {
		item := heap.Pop(&e.openSet).(*frontierItem)
		if !e.state.isStale(item) {
			return item
		}
	}
	return nil
}

// step performs one expansion and reports whether the search is done.
func (e *engine) step() bool {
	if e.done {
		return true
	}

	item := e.popLive()
	if item == nil {
		e.finish(Result{Outcome: OutcomeUnreachable, ExpandedNodes: e.expanded},
			fmt.Errorf("%w: from %v to %v", ErrUnreachable, e.source, e.destination))
		return true
	}

	cell := item.Cell
	e.state.closed[cell] = true
	e.expanded++
	e.current = e.grid.coordinate(cell)
	currentG := e.state.records[cell].g

	for _, offset := range neighborOffsets {
		neighbor := e.current.Add(offset)
		if neighbor == e.destination {
			e.reachDestination(cell, currentG+1)
			return true
		}
		if !e.grid.IsPassable(neighbor) {
			continue
		}
		next := e.grid.index(neighbor)
		if e.state.closed[next] {
			continue
		}
		g := currentG + 1.0
		h := e.heuristic(neighbor, e.destination)
		if e.state.relax(next, cell, g, h) {
			e.push(next, g+h)
		}
	}
	return false
}

func (e *engine) reachDestination(parent int, g float64) {
	dest := e.grid.index(e.destination)
	rec := &e.state.records[dest]
	rec.parent = parent
	rec.g = g

	cells, err := internal.ReconstructPath(e.state.parentOf, dest, e.grid.Area())
	if err != nil {
		e.finish(Result{Outcome: OutcomeUnreachable, ExpandedNodes: e.expanded},
			fmt.Errorf("reconstruct path to %v: %w", e.destination, err))
		return
	}
	path := make([]Coordinate, len(cells))
	for i, c := range cells {
		path[i] = e.grid.coordinate(c)
	}
	e.finish(Result{
		Outcome:       OutcomeFound,
		Path:          path,
		TotalCost:     g,
		ExpandedNodes: e.expanded,
	}, nil)
}

func (e *engine) finish(result Result, err error) {
	if result.Outcome == OutcomeFound {
		result.Steps = len(result.Path) - 1
	}
	e.done = true
	e.result = result
	e.err = err
}

// openCells returns the distinct cells that still have a live frontier entry.
func (e *engine) openCells() []Coordinate {
	if e.state == nil {
		return nil
	}
	seen := make(map[int]bool, len(e.openSet))
	out := make([]Coordinate, 0, len(e.openSet))
	for _, item := range e.openSet {
		if seen[item.Cell] || e.state.isStale(item) {
			continue
		}
		seen[item.Cell] = true
		out = append(out, e.grid.coordinate(item.Cell))
	}
	return out
}

func (e *engine) closedCells() []Coordinate {
	if e.state == nil {
		return nil
	}
	out := make([]Coordinate, 0, e.expanded)
	for cell, closed := range e.state.closed {
		if closed {
			out = append(out, e.grid.coordinate(cell))
		}
	}
	return out
}
