package gridastar

// cellRecord is the per-cell bookkeeping of one search.
type cellRecord struct {
	parent  int
	g, h, f float64
	visited bool
}

// searchState holds the records and closed set of one search, both sized
// to the grid area at creation.
type searchState struct {
	records []cellRecord
	closed  []bool
}

func newSearchState(area int) *searchState {
	return &searchState{
		records: make([]cellRecord, area),
		closed:  make([]bool, area),
	}
}

// setRoot records cell as the search origin, its own parent.
func (s *searchState) setRoot(cell int) {
	s.records[cell] = cellRecord{parent: cell, visited: true}
}

// relax stores the new costs when cell was never visited or f is strictly
// better than the recorded one. It reports whether the record changed.
func (s *searchState) relax(cell, parent int, g, h float64) bool {
	f := g + h
	rec := &s.records[cell]
	if rec.visited && f >= rec.f {
		return false
	}
	*rec = cellRecord{parent: parent, g: g, h: h, f: f, visited: true}
	return true
}

// isStale reports whether a popped entry no longer reflects the best known cost.
func (s *searchState) isStale(item *frontierItem) bool {
	return s.closed[item.Cell] || item.FCost > s.records[item.Cell].f
}

func (s *searchState) parentOf(cell int) int {
	return s.records[cell].parent
}
