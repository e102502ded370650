package t2048

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game adapts a GameState to the platform. It is the state's Notifier: every
// notification refreshes the palette and the status line.
type Game struct {
	variant Variant
	cfg     core.RuntimeConfig

	state   *GameState
	palette *Palette
	best    int // best score known to the platform, raised as the game goes

	last          MoveResult
	lastDir       Direction
	lastErr       error
	notifications int
	status        string

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// NewGame creates a game for the given variant. Call Reset before use.
func NewGame(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Name
}

// Variant returns the board variant.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset starts a fresh game with the engine settings from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.last = MoveResult{}
	g.lastErr = nil
	g.notifications = 0

	prob := cfg.NextBaseProbability
	if prob < 0 || prob > 1 {
		prob = DefaultNextBaseProbability
	}

	state, err := NewWithOptions(g.variant.Size, g, Options{
		Seed:                cfg.Seed,
		NextBaseProbability: prob,
		AlwaysBase:          cfg.AlwaysBase,
		ParallelLines:       cfg.ParallelLines,
	})
	if err != nil {
		// Variant sizes and the probability are valid here, so this is a bug.
		panic(fmt.Sprintf("t2048: reset %s: %v", g.variant.ID, err))
	}

	g.state = state
	g.palette = NewPalette()
	g.palette.Observe(state.HighestTile())
	g.updateStatus()
	g.checkScreenSize()
}

// Engine exposes the underlying game state.
func (g *Game) Engine() *GameState {
	return g.state
}

// Palette returns the tile colours of the current game.
func (g *Game) Palette() *Palette {
	return g.palette
}

// SetBestScore seeds the best score shown in the HUD, usually from storage.
func (g *Game) SetBestScore(best int) {
	if best > g.best {
		g.best = best
	}
}

// BestScore returns the best score including the current game.
func (g *Game) BestScore() int {
	return g.best
}

// Status returns the HUD status line.
func (g *Game) Status() string {
	return g.status
}

// LastMove returns the result and direction of the last applied move.
func (g *Game) LastMove() (MoveResult, Direction) {
	return g.last, g.lastDir
}

// Notifications returns how many state changes the engine reported since Reset.
func (g *Game) Notifications() int {
	return g.notifications
}

// OnStateChanged implements Notifier.
func (g *Game) OnStateChanged() {
	g.notifications++
	g.palette.Observe(g.state.HighestTile())
	if g.state.Score() > g.best {
		g.best = g.state.Score()
	}
	g.updateStatus()
}

func (g *Game) updateStatus() {
	switch {
	case g.state.IsGameOver():
		g.status = "Game Over. Press R to restart"
	case g.cfg.ShowAxisLock && !g.state.RowsMovable():
		g.status = "Rows locked"
	case g.cfg.ShowAxisLock && !g.state.ColsMovable():
		g.status = "Columns locked"
	default:
		g.status = ""
	}
}

// checkScreenSize updates the tooSmall flag.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < g.minWidth() || g.screenH < g.minHeight()
}

func (g *Game) minWidth() int {
	return g.variant.Size*cellWidth + 1
}

func (g *Game) minHeight() int {
	return hudHeight + g.variant.Size*cellHeight + 1 + footerHeight
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step processes one key press. Moves are applied immediately; there is no clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.IsGameOver() {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Changed: true}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	notified := g.notifications
	res, err := g.state.ApplyMove(dir, true)
	if err != nil && !errors.Is(err, ErrGameOver) {
		g.lastErr = err
	}
	g.last = res
	g.lastDir = dir

	return core.StepResult{State: g.State(), Changed: g.notifications != notified}
}

// Err returns the last engine error other than ErrGameOver.
func (g *Game) Err() error {
	return g.lastErr
}

func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	}
	return 0, false
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.state.Score(),
		HighestTile: g.state.HighestTile(),
		Moves:       g.state.Moves(),
		Size:        g.state.Size(),
		GameOver:    g.state.IsGameOver(),
		Paused:      g.paused,
	}
}
