package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Base is the smallest tile value.
	Base = 2
	// NextBase is the second spawnable tile value.
	NextBase = 2 * Base
)

// Position addresses a single cell.
type Position struct {
	Row, Col int
}

// String returns "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Grid is a square board of tile values. Zero marks an empty cell.
type Grid struct {
	size  int
	cells [][]int
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	g := &Grid{size: size}
	g.cells = make([][]int, size)
	for r := range g.cells {
		g.cells[r] = make([]int, size)
	}
	return g, nil
}

// NewGridFromRows builds a grid from explicit rows. The rows must form a square
// and every value must be a valid tile.
func NewGridFromRows(rows [][]int) (*Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}

	for r, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLineLength, r, len(row), g.size)
		}
		for c, v := range row {
			if err := g.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// ValidTile reports whether v may be stored in a cell.
func ValidTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= Base && v&(v-1) == 0
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) checkBounds(row, col int) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic(fmt.Sprintf("t2048: cell (%d,%d) out of range for size %d", row, col, g.size))
	}
}

// Get returns the value at (row, col). It panics on out-of-range coordinates.
func (g *Grid) Get(row, col int) int {
	g.checkBounds(row, col)
	return g.cells[row][col]
}

// Set stores value at (row, col).
func (g *Grid) Set(row, col, value int) error {
	g.checkBounds(row, col)
	if !ValidTile(value) {
		return fmt.Errorf("%w: %d at %d,%d", ErrInvalidValue, value, row, col)
	}
	g.cells[row][col] = value
	return nil
}

// cellFor maps the i-th element of line index along dir to grid coordinates.
// Element 0 is always the cell furthest in the direction of travel.
func (g *Grid) cellFor(dir Direction, index, i int) (row, col int) {
	last := g.size - 1
	switch dir {
	case DirLeft:
		return index, i
	case DirRight:
		return index, last - i
	case DirUp:
		return i, index
	case DirDown:
		return last - i, index
	default:
		panic(fmt.Sprintf("t2048: unknown direction %d", dir))
	}
}

// ExtractLine reads the row (DirLeft/DirRight) or column (DirUp/DirDown) at index, ordered
// so that the first element is the one nearest the wall tiles move toward.
func (g *Grid) ExtractLine(dir Direction, index int) []int {
	if index < 0 || index >= g.size {
		panic(fmt.Sprintf("t2048: line %d out of range for size %d", index, g.size))
	}

	line := make([]int, g.size)
	for i := range line {
		r, c := g.cellFor(dir, index, i)
		line[i] = g.cells[r][c]
	}
	return line
}

// WriteLine is the inverse of ExtractLine.
func (g *Grid) WriteLine(dir Direction, index int, line []int) error {
	if index < 0 || index >= g.size {
		panic(fmt.Sprintf("t2048: line %d out of range for size %d", index, g.size))
	}
	if len(line) != g.size {
		return fmt.Errorf("%w: got %d, want %d", ErrLineLength, len(line), g.size)
	}
	for _, v := range line {
		if !ValidTile(v) {
			return fmt.Errorf("%w: %d in line %d", ErrInvalidValue, v, index)
		}
	}

	g.writeLine(dir, index, line)
	return nil
}

// writeLine stores an already validated line.
func (g *Grid) writeLine(dir Direction, index int, line []int) {
	for i, v := range line {
		r, c := g.cellFor(dir, index, i)
		g.cells[r][c] = v
	}
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// HighestTile returns the maximum value on the grid.
func (g *Grid) HighestTile() int {
	highest := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v > highest {
				highest = v
			}
		}
	}
	return highest
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([][]int, g.size)}
	for r, row := range g.cells {
		c.cells[r] = append([]int(nil), row...)
	}
	return c
}

// Rows returns a copy of the cell values in row-major order.
func (g *Grid) Rows() [][]int {
	return g.Clone().cells
}

// Equal reports whether both grids hold the same values.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid as space-separated rows, mainly for test failures.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}
