package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	c := NewStyleCache()
	out := c.RenderScreen(s)

	if out != "hello\nworld" {
		t.Errorf("RenderScreen() = %q, want plain text", out)
	}
	if c.Len() != 0 {
		t.Errorf("default cells should not create styles, got %d", c.Len())
	}
}

func TestRenderScreenStyled(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextStyled(0, 0, "ab", core.ColorDarkText, core.Color("#ffff00"))
	s.DrawTextStyled(2, 0, "cd", core.ColorDarkText, core.Color("#ffff00"))
	s.DrawTextStyled(4, 0, "ef", core.ColorRed, core.ColorDefault)

	c := NewStyleCache()
	out := c.RenderScreen(s)

	// Styling may be stripped without a colour terminal, but text survives in order
	for _, part := range []string{"abcd", "ef"} {
		if !strings.Contains(out, part) {
			t.Errorf("RenderScreen() = %q, missing %q", out, part)
		}
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 cached styles, got %d", c.Len())
	}

	// Same colours reuse the cached style
	c.RenderScreen(s)
	if c.Len() != 2 {
		t.Errorf("styles should be reused, got %d", c.Len())
	}
}
