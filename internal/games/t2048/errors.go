package t2048

import "errors"

var (
	// ErrInvalidSize is returned when a grid is built with fewer than two rows.
	ErrInvalidSize = errors.New("t2048: grid size must be at least 2")

	// ErrInvalidValue is returned for tile values that are neither 0 nor a power of two >= Base.
	ErrInvalidValue = errors.New("t2048: invalid tile value")

	// ErrLineLength is returned when a written line does not match the grid size.
	ErrLineLength = errors.New("t2048: line length does not match grid size")

	// ErrInvariantViolation means the empty-cell index disagrees with the grid.
	ErrInvariantViolation = errors.New("t2048: invariant violation")

	// ErrGameOver is returned by moves attempted after the game has ended.
	ErrGameOver = errors.New("t2048: game is over")
)

// ErrInvalidOptions is returned for out-of-range engine options.
var ErrInvalidOptions = errors.New("t2048: invalid options")
