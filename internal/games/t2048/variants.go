// Package t2048 implements the 2048 tile-merging game on square boards of any
// size: the grid, the move engine, the spawn policy and the game state machine,
// plus an adapter that plugs a game into the platform registry.
package t2048

import "github.com/vovakirdan/tui-2048/internal/registry"

// Variant is a board size offered to players.
type Variant struct {
	ID   string // Registry and score storage key
	Name string // Display name
	Size int    // Grid dimension
}

// Variants lists the playable board sizes in menu order.
var Variants = []Variant{
	{ID: "2048-mini", Name: "2048 Mini (3x3)", Size: 3},
	{ID: "2048", Name: "2048 (4x4)", Size: 4},
	{ID: "2048-big", Name: "2048 Big (5x5)", Size: 5},
	{ID: "2048-huge", Name: "2048 Huge (6x6)", Size: 6},
}

// DefaultVariantID is played when nothing else is selected.
const DefaultVariantID = "2048"

// VariantCount returns the number of variants.
func VariantCount() int {
	return len(Variants)
}

// GetVariant looks a variant up by ID.
func GetVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return NewGame(v)
		})
	}
}
