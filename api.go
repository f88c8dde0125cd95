package gridastar

import (
	"errors"
	"runtime"
)

var (
	// ErrBlockedEndpoint means the source or destination cell is not passable.
	ErrBlockedEndpoint = errors.New("source or destination is blocked")
	// ErrUnreachable means the frontier was exhausted before reaching the destination.
	ErrUnreachable = errors.New("destination is unreachable")
)

// Outcome classifies the result of a search. The zero value is unknown.
type Outcome int

const (
	OutcomeFound Outcome = iota + 1
	OutcomeBlocked
	OutcomeUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a search.
// Path and Steps are only set when Outcome is OutcomeFound.
type Result struct {
	Outcome       Outcome
	Path          []Coordinate
	Steps         int
	TotalCost     float64
	ExpandedNodes int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Outcome == OutcomeFound }

// Options defines parameters for the search.
type Options struct {
	Heuristic       Heuristic
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithWorkers specifies how many goroutines SearchAll uses.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Heuristic:       Euclidean,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Euclidean
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Search finds a path from source to destination on grid.
//
// Blocked and unreachable searches return a Result carrying the matching
// Outcome together with an error wrapping ErrBlockedEndpoint or
// ErrUnreachable. Endpoints outside the grid count as blocked.
func Search(grid *Grid, source, destination Coordinate, options ...Option) (Result, error) {
	searchOptions := applyOptions(options)

	e, err := newEngine(grid, source, destination, searchOptions.Heuristic)
	if err != nil {
		return Result{}, err
	}
	for !e.step() {
	}
	return e.result, e.err
}
