package t2048

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every move direction.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "L" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// Axis groups the directions that move the same lines.
type Axis int

const (
	AxisRows Axis = iota // DirLeft, DirRight
	AxisCols             // DirUp, DirDown
)

// String returns "rows" or "columns".
func (a Axis) String() string {
	if a == AxisCols {
		return "columns"
	}
	return "rows"
}

// Axis returns the axis a direction moves along.
func (d Direction) Axis() Axis {
	if d == DirUp || d == DirDown {
		return AxisCols
	}
	return AxisRows
}

// Merge records a tile created by merging two equal tiles.
type Merge struct {
	Position
	Value int
}

// CollapseLine applies a single move to one line given in travel order.
// Equal neighbours merge once per move, left to right: [2,2,2] becomes [4,2,0].
// Returns the new line and the score gained from merges.
func CollapseLine(line []int) ([]int, int) {
	out, score, _ := collapseLine(line)
	return out, score
}

// collapseLine also reports the indices of merged tiles in the output.
func collapseLine(line []int) (out []int, score int, merged []int) {
	dense := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			dense = append(dense, v)
		}
	}

	out = make([]int, len(line))
	n := 0
	for i := 0; i < len(dense); i++ {
		if i+1 < len(dense) && dense[i] == dense[i+1] {
			v := dense[i] * 2
			out[n] = v
			score += v
			merged = append(merged, n)
			n++
			i++ // consumed by the merge
			continue
		}
		out[n] = dense[i]
		n++
	}

	return out, score, merged
}

// LineMovable reports whether a line has an empty cell or an adjacent equal pair.
func LineMovable(line []int) bool {
	for i, v := range line {
		if v == 0 {
			return true
		}
		if i+1 < len(line) && line[i+1] == v {
			return true
		}
	}
	return false
}

// MoveResult describes the outcome of one move.
type MoveResult struct {
	Changed    bool
	ScoreDelta int
	Merges     []Merge
	Spawned    *Spawn // nil unless a tile was spawned after the move
}

type lineResult struct {
	line    []int
	score   int
	merged  []int
	changed bool
}

// MoveEngine transforms a grid one move at a time.
// With parallel set, each line runs in its own goroutine and all of them are
// joined before the grid is written.
type MoveEngine struct {
	parallel bool
}

// NewMoveEngine creates a move engine.
func NewMoveEngine(parallel bool) *MoveEngine {
	return &MoveEngine{parallel: parallel}
}

// Parallel reports whether lines are collapsed concurrently.
func (e *MoveEngine) Parallel() bool {
	return e.parallel
}

// AxisMovable reports whether at least one line on the axis can move.
func (e *MoveEngine) AxisMovable(g *Grid, a Axis) bool {
	dir := DirLeft
	if a == AxisCols {
		dir = DirUp
	}
	for i := range g.Size() {
		if LineMovable(g.ExtractLine(dir, i)) {
			return true
		}
	}
	return false
}

// Apply performs the move on g in place. The grid is only written when at
// least one line changed.
func (e *MoveEngine) Apply(g *Grid, dir Direction) MoveResult {
	results := make([]lineResult, g.Size())

	if e.parallel {
		var eg errgroup.Group
		for i := range results {
			eg.Go(func() error {
				results[i] = collapseAt(g, dir, i)
				return nil
			})
		}
		// Lines never fail; Wait is the join barrier.
		_ = eg.Wait()
	} else {
		for i := range results {
			results[i] = collapseAt(g, dir, i)
		}
	}

	var res MoveResult
	for i, lr := range results {
		res.ScoreDelta += lr.score
		if !lr.changed {
			continue
		}
		res.Changed = true
		g.writeLine(dir, i, lr.line)
		for _, j := range lr.merged {
			r, c := g.cellFor(dir, i, j)
			res.Merges = append(res.Merges, Merge{Position: Position{Row: r, Col: c}, Value: lr.line[j]})
		}
	}
	return res
}

// collapseAt reads line i of g. It must not write to g.
func collapseAt(g *Grid, dir Direction, i int) lineResult {
	in := g.ExtractLine(dir, i)
	out, score, merged := collapseLine(in)

	changed := false
	for k := range in {
		if in[k] != out[k] {
			changed = true
			break
		}
	}
	return lineResult{line: out, score: score, merged: merged, changed: changed}
}
