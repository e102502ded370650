package t2048

// EmptyCellSet indexes the empty cells of a grid in row-major order.
// It is a cache: Refresh rebuilds it from the grid rather than patching it.
type EmptyCellSet struct {
	cells []Position
}

// NewEmptyCellSet builds the index for g.
func NewEmptyCellSet(g *Grid) *EmptyCellSet {
	s := &EmptyCellSet{}
	s.Refresh(g)
	return s
}

// Refresh recomputes the set so it matches g exactly.
func (s *EmptyCellSet) Refresh(g *Grid) {
	s.cells = s.cells[:0]
	for r := range g.Size() {
		for c := range g.Size() {
			if g.cells[r][c] == 0 {
				s.cells = append(s.cells, Position{Row: r, Col: c})
			}
		}
	}
}

// Len returns the number of indexed empty cells.
func (s *EmptyCellSet) Len() int {
	return len(s.cells)
}

// At returns the i-th empty cell.
func (s *EmptyCellSet) At(i int) Position {
	return s.cells[i]
}

// Contains reports whether p is indexed as empty.
func (s *EmptyCellSet) Contains(p Position) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the indexed cells.
func (s *EmptyCellSet) Positions() []Position {
	return append([]Position(nil), s.cells...)
}

// Clone returns an independent copy.
func (s *EmptyCellSet) Clone() *EmptyCellSet {
	return &EmptyCellSet{cells: s.Positions()}
}
