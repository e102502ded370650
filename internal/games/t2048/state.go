package t2048

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase is the coarse state of a game.
type Phase string

const (
	PhasePlaying    Phase = "playing"
	PhaseAxisLocked Phase = "axis_locked" // last move on some axis could not move anything
	PhaseOver       Phase = "over"
)

// DefaultNextBaseProbability is the chance that a spawned tile is NextBase.
const DefaultNextBaseProbability = 0.5

// Spawn describes a tile placed after a move.
type Spawn struct {
	Position
	Value int
}

// Options configures a GameState. The zero value is a valid configuration.
type Options struct {
	Seed          int64      // RNG seed, 0 means time-based
	Rand          *rand.Rand // overrides Seed when set
	ParallelLines bool       // collapse lines concurrently

	// NextBaseProbability is the chance of spawning NextBase instead of Base.
	// 0 means DefaultNextBaseProbability; set AlwaysBase to never spawn NextBase.
	NextBaseProbability float64
	AlwaysBase          bool
}

// DefaultOptions returns the stock engine options.
func DefaultOptions() Options {
	return Options{NextBaseProbability: DefaultNextBaseProbability}
}

// SpawnOptions returns the NextBaseProbability/AlwaysBase pair for p.
func SpawnOptions(p float64) (prob float64, alwaysBase bool) {
	if p == 0 {
		return 0, true
	}
	return p, false
}

func (o Options) nextBaseProbability() float64 {
	switch {
	case o.AlwaysBase:
		return 0
	case o.NextBaseProbability == 0:
		return DefaultNextBaseProbability
	}
	return o.NextBaseProbability
}

// GameState owns a grid and applies moves to it.
// It is not safe for concurrent use.
type GameState struct {
	grid     *Grid
	empty    *EmptyCellSet
	engine   *MoveEngine
	rng      *rand.Rand
	notifier Notifier

	nextBaseProb float64
	score        int
	moves        int

	// Cached movability per axis. Any change to the grid resets both to true.
	rowsMovable bool
	colsMovable bool
	over        bool

	beforeSpawn func(*Grid) // test hook, runs on the staged grid
}

// New starts a size x size game with two random tiles and default options.
func New(size int, n Notifier) (*GameState, error) {
	return NewWithOptions(size, n, DefaultOptions())
}

// NewWithOptions starts a game with explicit options.
func NewWithOptions(size int, n Notifier, opts Options) (*GameState, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	gs, err := newFromGrid(grid, n, opts)
	if err != nil {
		return nil, err
	}

	for range 2 {
		if _, _, err := gs.SpawnRandomTile(); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

// newFromGrid wraps an existing grid without spawning anything.
func newFromGrid(grid *Grid, n Notifier, opts Options) (*GameState, error) {
	if opts.NextBaseProbability < 0 || opts.NextBaseProbability > 1 {
		return nil, fmt.Errorf("%w: next base probability %v outside [0,1]", ErrInvalidOptions, opts.NextBaseProbability)
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	if n == nil {
		n = nopNotifier{}
	}

	return &GameState{
		grid:         grid,
		empty:        NewEmptyCellSet(grid),
		engine:       NewMoveEngine(opts.ParallelLines),
		rng:          rng,
		notifier:     n,
		nextBaseProb: opts.nextBaseProbability(),
		rowsMovable:  true,
		colsMovable:  true,
	}, nil
}

// Get returns the tile at (row, col).
func (gs *GameState) Get(row, col int) int {
	return gs.grid.Get(row, col)
}

// Size returns the grid dimension.
func (gs *GameState) Size() int {
	return gs.grid.Size()
}

// Score returns the sum of all merged tile values so far.
func (gs *GameState) Score() int {
	return gs.score
}

// HighestTile returns the largest tile on the grid.
func (gs *GameState) HighestTile() int {
	return gs.grid.HighestTile()
}

// Moves returns the number of moves that changed the grid.
func (gs *GameState) Moves() int {
	return gs.moves
}

// RowsMovable reports the cached movability of the rows.
func (gs *GameState) RowsMovable() bool {
	return gs.rowsMovable
}

// ColsMovable reports the cached movability of the columns.
func (gs *GameState) ColsMovable() bool {
	return gs.colsMovable
}

// EmptyCells returns the currently indexed empty cells.
func (gs *GameState) EmptyCells() []Position {
	return gs.empty.Positions()
}

// Grid returns a copy of the grid.
func (gs *GameState) Grid() *Grid {
	return gs.grid.Clone()
}

// Phase reports the current state machine phase.
func (gs *GameState) Phase() Phase {
	switch {
	case gs.over:
		return PhaseOver
	case !gs.rowsMovable || !gs.colsMovable:
		return PhaseAxisLocked
	default:
		return PhasePlaying
	}
}

func (gs *GameState) setAxisMovable(a Axis, movable bool) {
	if a == AxisCols {
		gs.colsMovable = movable
	} else {
		gs.rowsMovable = movable
	}
}

// ApplyMove performs a move. With spawnAfter false the move is only simulated
// on a copy and the game is left untouched.
//
// A move on an axis with no movable line changes nothing but locks that axis
// and still notifies. A move that changes the grid adds the merge score,
// spawns one tile and notifies.
func (gs *GameState) ApplyMove(dir Direction, spawnAfter bool) (MoveResult, error) {
	if !spawnAfter {
		return gs.Simulate(dir), nil
	}
	if gs.over {
		return MoveResult{}, ErrGameOver
	}

	axis := dir.Axis()
	if !gs.engine.AxisMovable(gs.grid, axis) {
		gs.setAxisMovable(axis, false)
		gs.IsGameOver()
		gs.notifier.OnStateChanged()
		return MoveResult{}, nil
	}
	gs.setAxisMovable(axis, true)

	// Stage on a copy so a failed spawn leaves the game untouched.
	next := gs.grid.Clone()
	res := gs.engine.Apply(next, dir)
	if !res.Changed {
		return res, nil
	}

	empty := NewEmptyCellSet(next)
	if gs.beforeSpawn != nil {
		gs.beforeSpawn(next)
	}
	spawn, ok, err := gs.spawnOn(next, empty)
	if err != nil {
		return MoveResult{}, fmt.Errorf("move %s aborted: %w", dir, err)
	}
	if ok {
		res.Spawned = &spawn
	}

	gs.grid, gs.empty = next, empty
	gs.score += res.ScoreDelta
	gs.moves++
	gs.rowsMovable, gs.colsMovable = true, true

	gs.IsGameOver()
	gs.notifier.OnStateChanged()
	return res, nil
}

// Simulate runs a move against a deep copy and returns what would happen.
func (gs *GameState) Simulate(dir Direction) MoveResult {
	return gs.engine.Apply(gs.grid.Clone(), dir)
}

// IsGameOver reports whether no move can change the grid any more.
// Once it returns true the game stays over.
func (gs *GameState) IsGameOver() bool {
	if gs.over {
		return true
	}
	if !gs.rowsMovable && !gs.colsMovable {
		gs.over = true
		return true
	}
	if gs.empty.Len() > 0 {
		return false
	}

	for _, dir := range Directions {
		if gs.Simulate(dir).Changed {
			return false
		}
	}
	gs.over = true
	return true
}

// SpawnRandomTile places Base or NextBase on a uniformly chosen empty cell.
// It returns false when the grid is full.
func (gs *GameState) SpawnRandomTile() (Spawn, bool, error) {
	return gs.spawnOn(gs.grid, gs.empty)
}

func (gs *GameState) spawnOn(g *Grid, empty *EmptyCellSet) (Spawn, bool, error) {
	if empty.Len() == 0 {
		return Spawn{}, false, nil
	}

	p := empty.At(gs.rng.Intn(empty.Len()))
	if v := g.cells[p.Row][p.Col]; v != 0 {
		return Spawn{}, false, fmt.Errorf("%w: spawn cell %s already holds %d", ErrInvariantViolation, p, v)
	}

	value := Base
	if gs.rng.Float64() < gs.nextBaseProb {
		value = NextBase
	}
	g.cells[p.Row][p.Col] = value
	empty.Refresh(g)

	return Spawn{Position: p, Value: value}, true, nil
}
