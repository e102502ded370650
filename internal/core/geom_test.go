package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 6, 4)

	if r.Right() != 16 {
		t.Errorf("Right() = %d, expected 16", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, expected 24", r.Bottom())
	}
}

func TestMin(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Min(-2, -2) != -2 {
		t.Error("Min of equal values should return that value")
	}
}
