package gridastar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_MatchesSearch(t *testing.T) {
	g := ReferenceGrid()
	want, err := Search(g, ReferenceSource, ReferenceDestination)
	require.NoError(t, err)

	stepper, err := NewStepper(g, ReferenceSource, ReferenceDestination)
	require.NoError(t, err)
	require.False(t, stepper.Done())
	_, ok := stepper.Result()
	assert.False(t, ok)

	first := stepper.Step()
	assert.Equal(t, 1, first.StepIndex)
	assert.Equal(t, ReferenceSource, first.Current)
	assert.Equal(t, []Coordinate{ReferenceSource}, first.Closed)
	assert.ElementsMatch(t, coords([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}), first.Open)
	assert.False(t, first.Done)

	var last StepSnapshot
	for i := 0; i < g.Area()*2 && !stepper.Done(); i++ {
		last = stepper.Step()
	}
	require.True(t, last.Done)
	assert.Equal(t, want.ExpandedNodes, last.StepIndex)
	assert.Equal(t, OutcomeFound, last.Outcome)
	assert.Equal(t, want.Path, last.Path)

	got, ok := stepper.Result()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.NoError(t, stepper.Err())

	again := stepper.Step()
	assert.Equal(t, last.StepIndex, again.StepIndex)
	assert.Equal(t, last.Path, again.Path)

	// callers own the returned paths
	last.Path[0] = Coordinate{Row: 5, Col: 5}
	got.Path[1] = Coordinate{Row: 5, Col: 5}
	assert.Equal(t, want.Path, stepper.Snapshot().Path)
	fresh, _ := stepper.Result()
	assert.Equal(t, want.Path, fresh.Path)
}

func TestStepper_BlockedAndUnreachable(t *testing.T) {
	g := ReferenceGrid()

	stepper, err := NewStepper(g, ReferenceSource, Coordinate{Row: 7, Col: 8})
	assert.ErrorIs(t, err, ErrBlockedEndpoint)
	require.NotNil(t, stepper)
	assert.True(t, stepper.Done())
	snap := stepper.Step()
	assert.Equal(t, OutcomeBlocked, snap.Outcome)
	assert.Zero(t, snap.StepIndex)

	walled := mustGrid(t, "111\n000\n111")
	stepper, err = NewStepper(walled, Coordinate{Row: 0, Col: 0}, Coordinate{Row: 2, Col: 2}, WithHeuristic(Chebyshev))
	require.NoError(t, err)
	for !stepper.Done() {
		snap = stepper.Step()
	}
	assert.Equal(t, OutcomeUnreachable, snap.Outcome)
	assert.Len(t, snap.Closed, 3)
	assert.Empty(t, snap.Open)
	assert.ErrorIs(t, stepper.Err(), ErrUnreachable)

	_, err = NewStepper(nil, Coordinate{}, Coordinate{})
	assert.ErrorIs(t, err, ErrNilGrid)
}
