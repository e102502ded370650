package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type fakeStore struct {
	results []storage.Result
	high    int
	saveErr error
}

func (f *fakeStore) SaveResult(r storage.Result) (storage.Result, error) {
	if f.saveErr != nil {
		return r, f.saveErr
	}
	r.ID = int64(len(f.results) + 1)
	r.RunID = "run-1"
	f.results = append(f.results, r)
	return r, nil
}

func (f *fakeStore) HighScore(string) (int, error) {
	return f.high, nil
}

func newTestModel(t *testing.T, store ResultStore) Model {
	t.Helper()
	v, ok := t2048.GetVariant("2048-mini")
	if !ok {
		t.Fatal("2048-mini not registered")
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(t2048.NewGame(v), store, nil, cfg)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func playToEnd(t *testing.T, m Model) Model {
	t.Helper()
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown},
	}
	for i := 0; i < 10000 && !m.GameState().GameOver; i++ {
		m = send(m, keys[(i*7+i/3)%len(keys)])
	}
	if !m.GameState().GameOver {
		t.Fatal("3x3 game should end")
	}
	return m
}

func TestModelSavesResultOnce(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)

	m = playToEnd(t, m)
	if len(store.results) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(store.results))
	}

	r := store.results[0]
	st := m.GameState()
	if r.Variant != "2048-mini" || r.Size != 3 || r.Score != st.Score || r.HighestTile != st.HighestTile || r.Moves != st.Moves {
		t.Errorf("saved %+v, game state %+v", r, st)
	}
	if m.LastRunID() != "run-1" {
		t.Errorf("LastRunID() = %q", m.LastRunID())
	}

	// More keys after game over do not save again
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(store.results) != 1 {
		t.Errorf("result saved twice")
	}

	// R starts a new game
	m = send(m, runeKey('r'))
	if m.GameState().GameOver || m.GameState().Score != 0 {
		t.Errorf("restart should start a fresh game: %+v", m.GameState())
	}

	playToEnd(t, m)
	if len(store.results) != 2 {
		t.Errorf("expected 2 saved results after second game, got %d", len(store.results))
	}
}

func TestModelRestartWhilePlaying(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)
	keys := []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown}}
	for i := 0; i < len(keys)*4 && m.GameState().Moves == 0; i++ {
		m = send(m, keys[i%len(keys)])
	}
	if m.GameState().Moves == 0 {
		t.Fatal("fresh board should accept a move")
	}

	m = send(m, runeKey('r'))
	if st := m.GameState(); st.Moves != 0 || st.Score != 0 || st.GameOver {
		t.Errorf("R should start a fresh game, got %+v", st)
	}
	if len(store.results) != 0 {
		t.Error("an abandoned game should not be saved")
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := newTestModel(t, nil)
	if m.BackToMenu() {
		t.Fatal("new model should not ask for the menu")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("back should return a command")
	}
	if !next.(Model).BackToMenu() {
		t.Error("Esc should ask to go back to the menu")
	}

	m = newTestModel(t, nil)
	next, _ = m.Update(runeKey('q'))
	if next.(Model).BackToMenu() {
		t.Error("q should quit, not go back to the menu")
	}
}

func TestModelSaveErrorDoesNotStopGame(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	m := newTestModel(t, store)

	m = playToEnd(t, m)
	if m.LastRunID() != "" {
		t.Error("failed save should not record a run id")
	}
	if m.View() == "" {
		t.Error("view should still render")
	}
}

func TestModelSeedsBestScore(t *testing.T) {
	store := &fakeStore{high: 9999}
	m := newTestModel(t, store)

	g := m.game.(*t2048.Game)
	if g.BestScore() != 9999 {
		t.Errorf("BestScore() = %d, want 9999", g.BestScore())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	before := m.GameState()

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.GameState() != before {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestMenuModel(t *testing.T) {
	cfg := core.DefaultConfig()
	m := NewMenuModel(nil, nil, cfg, "2048-big")

	if len(m.items) != t2048.VariantCount() {
		t.Fatalf("menu has %d items, want %d", len(m.items), t2048.VariantCount())
	}
	if m.items[m.cursor].GameID != "2048-big" {
		t.Errorf("cursor on %s, want 2048-big", m.items[m.cursor].GameID)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().GameID != "2048-huge" {
		t.Errorf("Selected() = %+v, want 2048-huge", m.Selected())
	}

	next, _ = NewMenuModel(nil, nil, cfg, "").Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

type fakeStats map[string]*storage.GameStats

func (f fakeStats) GetAllGamesStats() (map[string]*storage.GameStats, error) {
	return f, nil
}

func TestMenuShowsBestScores(t *testing.T) {
	stats := fakeStats{"2048": {Variant: "2048", GamesCount: 3, HighScore: 12345}}
	m := NewMenuModel(stats, nil, core.DefaultConfig(), "2048")

	if m.items[m.cursor].Best != 12345 {
		t.Errorf("Best = %d, want 12345", m.items[m.cursor].Best)
	}
	if view := m.View(); !containsAll(view, "best 12,345", "not played") {
		t.Errorf("menu view missing scores:\n%s", view)
	}
}

type fakeScores []storage.Result

func (f fakeScores) TopScores(string, int) ([]storage.Result, error) {
	return f, nil
}

func TestScoreboardModel(t *testing.T) {
	scores := fakeScores{{Variant: "2048-mini", Score: 2500, HighestTile: 256, Moves: 120}}
	m := NewScoreboardModel(scores, 100, 30)

	if len(m.table.Rows()) != 1 {
		t.Fatalf("table has %d rows, want 1", len(m.table.Rows()))
	}
	row := m.table.Rows()[0]
	if row[1] != "2,500" || row[2] != "256" || row[4] != "-" {
		t.Errorf("row = %v", row)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 1 {
		t.Errorf("gameCursor = %d, want 1", m.gameCursor)
	}

	if !containsAll(m.View(), "2048-mini", "2048-huge", "games: 1  best: 2,500  highest tile: 256") {
		t.Errorf("scoreboard view missing tabs or summary:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyLeft})
	if c := next.(ScoreboardModel).gameCursor; c != len(m.games)-1 {
		t.Errorf("gameCursor = %d, want wrap to %d", c, len(m.games)-1)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	empty := NewScoreboardModel(nil, 60, 20)
	if !containsAll(empty.View(), "No scores recorded yet.") {
		t.Error("empty scoreboard should say so")
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
