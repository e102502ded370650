package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionUp) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Fatal("Set should initialise a zero frame")
	}
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) || f.Has(ActionDown) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}

	c := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear left actions behind")
	}
	if !c.Has(ActionUp) {
		t.Error("clone should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
