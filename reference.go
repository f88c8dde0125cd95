package gridastar

// Reference scenario endpoints.
var (
	ReferenceSource      = Coordinate{Row: 0, Col: 0}
	ReferenceDestination = Coordinate{Row: 9, Col: 9}
)

var referenceRows = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
	{1, 1, 1, 1, 1, 1, 1, 0, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// ReferenceGrid returns a fresh copy of the 10x10 delivery grid: open except
// for a wall on row 7, columns 7 to 9, and the cell (8,7).
func ReferenceGrid() *Grid {
	g, err := GridFromRows(referenceRows)
	if err != nil {
		panic(err)
	}
	return g
}
