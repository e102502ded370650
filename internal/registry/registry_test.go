package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type fakeGame struct {
	id    string
	title string
}

func (f *fakeGame) ID() string                           { return f.id }
func (f *fakeGame) Title() string                        { return f.title }
func (f *fakeGame) Reset(core.RuntimeConfig)             {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                  {}
func (f *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Game { return &fakeGame{id: "test-b", title: "B"} })
	Register("test-a", func() Game { return &fakeGame{id: "test-a", title: "A"} })

	if !Exists("test-a") {
		t.Fatal("test-a should be registered")
	}
	if Exists("missing") {
		t.Error("missing should not be registered")
	}

	g, err := Create("test-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "B" {
		t.Errorf("Title() = %q, want B", g.Title())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown id")
	}

	// Registration order is preserved
	var ids []string
	for _, info := range List() {
		if info.ID == "test-a" || info.ID == "test-b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "test-b" || ids[1] != "test-a" {
		t.Errorf("List() order = %v, want [test-b test-a]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })
}
