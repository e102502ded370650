// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and result persistence.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// bestScorer is implemented by games that show a stored best score.
type bestScorer interface {
	SetBestScore(best int)
}

// statusReporter is implemented by games with a HUD status line.
type statusReporter interface {
	Status() string
}

// resizer is implemented by games that can adapt to a new window size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// ResultStore persists finished games.
type ResultStore interface {
	SaveResult(r storage.Result) (storage.Result, error)
	HighScore(variant string) (int, error)
}

// Model is the Bubble Tea model for playing one game.
// The game advances only on key presses; there is no tick loop.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	styles     *StyleCache
	store      ResultStore
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gameState  core.GameState
	lastStatus string
	quitting   bool
	backToMenu bool
	scoreSaved bool   // Whether the result has been saved for current game over
	lastRunID  string // Run id of the last saved result
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
// A nil store disables persistence; a nil logger discards logs.
func NewModel(game registry.Game, store ResultStore, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		styles:    NewStyleCache(),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.start()
	return m
}

// start resets the game and seeds its best score from storage.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.lastStatus = ""

	if bs, ok := m.game.(bestScorer); ok && m.store != nil {
		best, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.logger.Warn("cannot load high score", "variant", m.game.ID(), "err", err)
		} else {
			bs.SetBestScore(best)
		}
	}

	m.logger.Info("game started", "variant", m.game.ID(), "seed", m.config.Seed)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Each key press is one game step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		m.quitting = true
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionRestart:
		if !m.gameState.GameOver {
			m.logger.Info("game abandoned",
				"variant", m.game.ID(),
				"score", m.gameState.Score,
				"moves", m.gameState.Moves)
		}
		// New seed for the new game
		m.config.Seed = time.Now().UnixNano()
		m.start()
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	result := m.game.Step(frame)
	m.gameState = result.State

	m.logStatus(action)

	// Save result on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
	}

	return m, nil
}

// logStatus logs axis locks reported by the game.
func (m *Model) logStatus(action core.Action) {
	sr, ok := m.game.(statusReporter)
	if !ok {
		return
	}
	status := sr.Status()
	if status != m.lastStatus && status != "" && !m.gameState.GameOver {
		m.logger.Debug("axis locked", "status", status, "action", action)
	}
	m.lastStatus = status
}

// saveResult persists the finished game.
func (m *Model) saveResult() {
	m.scoreSaved = true
	m.logger.Info("game over",
		"variant", m.game.ID(),
		"score", m.gameState.Score,
		"highest", m.gameState.HighestTile,
		"moves", m.gameState.Moves)

	if m.store == nil {
		return
	}

	saved, err := m.store.SaveResult(storage.Result{
		Variant:     m.game.ID(),
		Score:       m.gameState.Score,
		HighestTile: m.gameState.HighestTile,
		Moves:       m.gameState.Moves,
		Size:        m.gameState.Size,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("cannot save result", "variant", m.game.ID(), "err", err)
		return
	}
	m.lastRunID = saved.RunID
	m.logger.Debug("result saved", "run_id", saved.RunID)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameState returns the platform view of the current game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// LastRunID returns the run id of the last saved result, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// BackToMenu reports whether the player left with Esc/B rather than quitting.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.styles.RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store ResultStore, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
