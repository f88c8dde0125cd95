package gridastar

import "slices"

// StepSnapshot exposes the per-iteration state of the search.
// Outcome and Path are meaningful once Done is true.
type StepSnapshot struct {
	Current   Coordinate
	Open      []Coordinate
	Closed    []Coordinate
	Done      bool
	Outcome   Outcome
	Path      []Coordinate
	StepIndex int
}

// Stepper runs a search one expansion per Step call.
type Stepper struct {
	engine    *engine
	stepCount int
}

// NewStepper prepares a search without expanding anything. When an endpoint
// is blocked the returned Stepper is already done and the error wraps
// ErrBlockedEndpoint.
func NewStepper(grid *Grid, source, destination Coordinate, options ...Option) (*Stepper, error) {
	searchOptions := applyOptions(options)
	e, err := newEngine(grid, source, destination, searchOptions.Heuristic)
	if err != nil {
		return nil, err
	}
	return &Stepper{engine: e}, e.err
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.engine.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done it keeps returning the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	if !s.engine.done {
		s.stepCount++
		s.engine.step()
	}
	return s.Snapshot()
}

// Snapshot returns the current state without advancing.
func (s *Stepper) Snapshot() StepSnapshot {
	snap := StepSnapshot{
		Current:   s.engine.current,
		Open:      s.engine.openCells(),
		Closed:    s.engine.closedCells(),
		Done:      s.engine.done,
		StepIndex: s.stepCount,
	}
	if s.engine.done {
		snap.Outcome = s.engine.result.Outcome
		snap.Path = slices.Clone(s.engine.result.Path)
	}
	return snap
}

// Result returns the final result. ok is false while the search is running.
func (s *Stepper) Result() (result Result, ok bool) {
	if !s.engine.done {
		return Result{}, false
	}
	result = s.engine.result
	result.Path = slices.Clone(result.Path)
	return result, true
}

// Err returns the error Search would have returned, once the search is done.
func (s *Stepper) Err() error {
	return s.engine.err
}
