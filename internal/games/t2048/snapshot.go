package t2048

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Variant     string
	Size        int
	Score       int
	Moves       int
	HighestTile int
	Rows        [][]int
	RowsMovable bool
	ColsMovable bool
	Phase       Phase
	Paused      bool
	TooSmall    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant:     g.variant.ID,
		Size:        g.state.Size(),
		Score:       g.state.Score(),
		Moves:       g.state.Moves(),
		HighestTile: g.state.HighestTile(),
		Rows:        g.state.grid.Rows(),
		RowsMovable: g.state.RowsMovable(),
		ColsMovable: g.state.ColsMovable(),
		Phase:       g.state.Phase(),
		Paused:      g.paused,
		TooSmall:    g.tooSmall,
	}
}
