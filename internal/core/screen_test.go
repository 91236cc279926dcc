package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorNeonCyan)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorNeonCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected X in neon cyan", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should be uncolored")
	}
}

func TestScreenSetShaded(t *testing.T) {
	s := NewScreen(4, 1)

	s.SetShaded(1, 0, '*', ColorNeonPink, ShadeGlow)
	s.SetShaded(2, 0, '.', ColorNeonPink, ShadeDim)
	s.SetShaded(9, 0, 'X', ColorNeonPink, ShadeGlow)

	if got := s.GetCell(1, 0); got != (Cell{Rune: '*', Color: ColorNeonPink, Shade: ShadeGlow}) {
		t.Errorf("GetCell(1, 0) = %+v, expected a glowing pink star", got)
	}
	if got := s.GetCell(2, 0).Shade; got != ShadeDim {
		t.Errorf("GetCell(2, 0).Shade = %d, expected dim", got)
	}

	// SetColored overwrites the shade with the normal one.
	s.SetColored(1, 0, '*', ColorNeonPink)
	if got := s.GetCell(1, 0).Shade; got != ShadeNormal {
		t.Errorf("shade after SetColored = %d, expected normal", got)
	}

	s.Clear()
	if got := s.GetCell(2, 0); got != blankCell {
		t.Errorf("Clear left %+v, expected a blank cell", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(0, 0, 10, 10, 'X', ColorRed)

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if cell := s.GetCell(x, y); cell != blankCell {
				t.Fatalf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorNeonPink)

	for i, ch := range "Hello" {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != ch || cell.Color != ColorNeonPink {
			t.Errorf("DrawTextColored: expected %q at (%d, 1), got %+v", ch, 2+i, cell)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "♥♥x")

	if s.Get(0, 0) != '♥' || s.Get(1, 0) != '♥' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte runes should occupy one cell each, got %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorWhite)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox: corners not drawn correctly")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox: edges not drawn correctly")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(7) != strings.Repeat(" ", 15) {
		t.Errorf("New rows should be blank, got %q", s.Row(7))
	}
}
