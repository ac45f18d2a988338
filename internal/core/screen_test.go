package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(2, 3, '@')
	if got := s.Get(2, 3); got != '@' {
		t.Errorf("Get(2, 3) = %q, expected '@'", got)
	}

	s.SetColored(4, 1, '#', ColorGreen)
	cell := s.GetCell(4, 1)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4, 1) = %+v, expected green '#'", cell)
	}

	// Out-of-bounds writes are ignored, reads return a blank cell
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(0, 0, 'x', ColorRed)
	s.Clear()
	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "abcde") // clips at the right edge
	if row := s.Row(0); row != "       abc" {
		t.Errorf("Row(0) = %q", row)
	}

	s.DrawTextCentered(1, "hi")
	if row := s.Row(1); row != "    hi    " {
		t.Errorf("Row(1) = %q", row)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(1, 1, '*')
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != '*' {
		t.Errorf("content lost on grow: Get(1, 1) = %q", got)
	}

	s.Resize(2, 2)
	if got := s.Get(1, 1); got != '*' {
		t.Errorf("content lost on shrink: Get(1, 1) = %q", got)
	}
}
