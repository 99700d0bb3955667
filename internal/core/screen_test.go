package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	for y, h := 0, s.Height(); y < h; y++ {
		if got := s.Row(y); got != "        " {
			t.Errorf("Row(%d) = %q, expected blanks", y, got)
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '#', ColorPipe)

	if got := s.GetCell(1, 2); got != (Cell{Rune: '#', Color: ColorPipe}) {
		t.Errorf("GetCell(1, 2) = %+v, expected '#' as pipe", got)
	}

	// dropped silently
	s.SetColored(-1, 0, 'x', ColorText)
	s.SetColored(4, 0, 'x', ColorText)
	s.SetColored(0, 4, 'x', ColorText)
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("GetCell(-1, 0) = %q, expected blank", got.Rune)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Errorf("out-of-bounds writes leaked into %q", s.String())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 0, 3, 2), '@', ColorBird)
	s.Clear()
	if got := s.String(); got != "   \n   " {
		t.Errorf("String() after Clear = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawTextColored(9, 0, "Score", ColorText)
	if got := s.Row(0); got != "         Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}

	s.Clear()
	s.DrawTextColored(0, 0, "▶█▶", ColorBird)
	if got := s.GetCell(2, 0).Rune; got != '▶' {
		t.Errorf("multibyte text: cell 2 = %q, expected '▶'", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextCentered(1, "Over", ColorText)
	if got := s.Row(1); got != "   Over   " {
		t.Errorf("Row(1) = %q, expected centered text", got)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewRect(3, 2, 5, 5), '#', ColorPipe)
	expected := "     \n     \n   ##\n   ##"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if s.GetCell(4, 3).Color != ColorPipe {
		t.Error("filled cells should carry the fill color")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(-2, 0, 5, '═', ColorGround)
	if got := s.Row(0); got != "═══   " {
		t.Errorf("Row(0) = %q, expected a clipped line", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(0, 0, 'x', ColorText)
	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.GetCell(0, 0).Rune != ' ' {
		t.Error("Resize should blank the grid")
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.Row(0) != "" {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
