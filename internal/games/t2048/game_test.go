package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %s not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", v.ID, err)
		}
		if g.Title() != v.Name {
			t.Errorf("Title() = %q, want %q", g.Title(), v.Name)
		}
	}

	if _, ok := GetVariant(DefaultVariantID); !ok {
		t.Error("default variant missing")
	}
	if _, ok := GetVariant("2048-giant"); ok {
		t.Error("unknown variant should not be found")
	}
}

func TestDeterministicReset(t *testing.T) {
	v, _ := GetVariant("2048")

	g1 := NewGame(v)
	g1.Reset(testConfig())
	g2 := NewGame(v)
	g2.Reset(testConfig())

	if !g1.Engine().Grid().Equal(g2.Engine().Grid()) {
		t.Errorf("Same seed should produce same initial board:\n%s\nvs\n%s",
			g1.Engine().Grid(), g2.Engine().Grid())
	}
}

func TestStepAppliesMoves(t *testing.T) {
	v, _ := GetVariant("2048")
	g := NewGame(v)
	g.Reset(testConfig())

	moved := false
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		before := g.Engine().Grid()
		g.Step(press(a))
		if !g.Engine().Grid().Equal(before) {
			moved = true
		}
	}
	if !moved {
		t.Error("at least one direction should move a fresh board")
	}
	if g.Notifications() == 0 {
		t.Error("moves should notify the game")
	}

	// Actions without a direction do nothing.
	before := g.Snapshot()
	g.Step(press(core.ActionBack))
	if g.Snapshot().Moves != before.Moves {
		t.Error("non-move action should not change the board")
	}
}

func TestStepChanged(t *testing.T) {
	v, _ := GetVariant("2048-mini")
	g := NewGame(v)
	g.Reset(testConfig())

	gs, err := newFromGrid(mustGrid(t, [][]int{
		{2, 0, 0},
		{4, 0, 0},
		{8, 16, 32},
	}), g, Options{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	g.state = gs

	// Rows can move, but nothing slides further left.
	if res := g.Step(press(core.ActionLeft)); res.Changed {
		t.Error("left move that changes nothing should not report Changed")
	}
	if g.Notifications() != 0 {
		t.Errorf("Notifications() = %d, want 0", g.Notifications())
	}

	if res := g.Step(press(core.ActionRight)); !res.Changed {
		t.Error("right move should report Changed")
	}
}

func TestResetWithoutSpawnProbability(t *testing.T) {
	v, _ := GetVariant("2048")
	g := NewGame(v)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 9})
	if g.state.nextBaseProb != DefaultNextBaseProbability {
		t.Errorf("nextBaseProb = %v, want %v", g.state.nextBaseProb, DefaultNextBaseProbability)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 9, AlwaysBase: true})
	if g.state.nextBaseProb != 0 {
		t.Errorf("nextBaseProb = %v, want 0 with AlwaysBase", g.state.nextBaseProb)
	}
}

func TestPause(t *testing.T) {
	v, _ := GetVariant("2048-mini")
	g := NewGame(v)
	g.Reset(testConfig())

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Engine().Grid()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		g.Step(press(a))
	}
	if !g.Engine().Grid().Equal(before) {
		t.Error("paused game should ignore moves")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestPlayUntilGameOver(t *testing.T) {
	v, _ := GetVariant("2048-mini")
	g := NewGame(v)
	g.Reset(testConfig())

	actions := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := 0; i < 10000 && !g.State().GameOver; i++ {
		g.Step(press(actions[(i*7+i/3)%len(actions)]))
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("3x3 game should end")
	}
	if g.Status() != "Game Over. Press R to restart" {
		t.Errorf("Status() = %q", g.Status())
	}
	if g.BestScore() < st.Score {
		t.Errorf("BestScore() = %d, want at least %d", g.BestScore(), st.Score)
	}
	if g.Snapshot().Phase != PhaseOver {
		t.Errorf("Snapshot Phase = %s, want over", g.Snapshot().Phase)
	}
	if g.Err() != nil {
		t.Errorf("unexpected engine error: %v", g.Err())
	}

	// Moves after the end are ignored.
	res := g.Step(press(core.ActionLeft))
	if res.Changed {
		t.Error("step after game over should not report a change")
	}

	// Restart starts a new game but keeps the best score.
	best := g.BestScore()
	g.Reset(testConfig())
	if g.State().GameOver || g.State().Score != 0 {
		t.Error("Reset should start a fresh game")
	}
	if g.BestScore() != best {
		t.Errorf("BestScore() after reset = %d, want %d", g.BestScore(), best)
	}
}

func TestAxisLockStatus(t *testing.T) {
	v, _ := GetVariant("2048-mini")
	g := NewGame(v)
	g.Reset(testConfig())

	grid := mustGrid(t, [][]int{
		{2, 4, 8},
		{2, 8, 4},
		{16, 32, 64},
	})
	gs, err := newFromGrid(grid, g, Options{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	g.state = gs

	g.Step(press(core.ActionLeft))
	if g.Status() != "Rows locked" {
		t.Errorf("Status() = %q, want Rows locked", g.Status())
	}
	if g.Snapshot().Phase != PhaseAxisLocked {
		t.Errorf("Phase = %s, want axis_locked", g.Snapshot().Phase)
	}

	g.Step(press(core.ActionUp))
	if g.Status() != "" {
		t.Errorf("Status() = %q, want empty after a move", g.Status())
	}
}

func TestSetBestScore(t *testing.T) {
	v, _ := GetVariant("2048")
	g := NewGame(v)
	g.SetBestScore(500)
	g.SetBestScore(100)
	if g.BestScore() != 500 {
		t.Errorf("BestScore() = %d, want 500", g.BestScore())
	}
}

func TestRender(t *testing.T) {
	for _, v := range Variants {
		g := NewGame(v)
		g.Reset(testConfig())

		screen := core.NewScreen(80, 24)
		g.Render(screen)
		out := screen.String()

		if !strings.Contains(out, v.Name) {
			t.Errorf("%s: render should contain the title", v.ID)
		}
		if !strings.Contains(out, "Score: 0") {
			t.Errorf("%s: render should contain the score", v.ID)
		}
		if !strings.ContainsRune(out, '┼') {
			t.Errorf("%s: render should contain the grid", v.ID)
		}
	}
}

func TestRenderTileColours(t *testing.T) {
	v, _ := GetVariant("2048-mini")
	g := NewGame(v)
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Top-left cell interior of the centred board.
	boardX := (80 - (3*cellWidth + 1)) / 2
	cell := screen.GetCell(boardX+1, hudHeight+1)
	c, _ := g.Palette().Color(g.Engine().Get(0, 0))
	if cell.BG != core.Color(c.Hex()) {
		t.Errorf("tile background = %q, want %q", cell.BG, c.Hex())
	}
}

func TestTooSmall(t *testing.T) {
	v, _ := GetVariant("2048-huge")
	g := NewGame(v)
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	if !g.Snapshot().TooSmall {
		t.Fatal("6x6 board should not fit in 20x10")
	}
	before := g.Engine().Grid()
	g.Step(press(core.ActionLeft))
	if !g.Engine().Grid().Equal(before) {
		t.Error("moves should be ignored while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("render should explain the window is too small")
	}

	g.Resize(80, 24)
	if g.Snapshot().TooSmall {
		t.Error("6x6 board should fit in 80x24")
	}
}
