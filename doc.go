// Package gridastar provides A* pathfinding on 8-connected occupancy grids.
//
// It exposes three entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchAll: run many independent searches over the same grid on a worker pool.
//
// Every move, orthogonal or diagonal, costs 1. The default heuristic is the
// straight-line (Euclidean) distance; Chebyshev distance is available through
// WithHeuristic when strictly minimal step counts are required.
//
// A single search is synchronous and owns all of its state. The Grid is only
// read during a search, so one Grid may be shared by concurrent searches.
package gridastar
