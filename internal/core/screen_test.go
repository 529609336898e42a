package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 10x5", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Repeat(strings.Repeat(" ", 10)+"\n", 4)+strings.Repeat(" ", 10) {
		t.Errorf("new screen should be blank, got %q", got)
	}

	empty := NewScreen(-3, 2)
	if empty.Width() != 0 || empty.Row(0) != "" {
		t.Error("negative width should clamp to zero")
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds is ignored on write and blank on read
	s.Set(-1, 0, 'Y')
	s.Set(100, 0, 'Y')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetWithColor(3, 2, '@', ColorBrightGreen)

	if cell := s.GetCell(3, 2); cell.Rune != '@' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(3, 2) = %+v", cell)
	}

	s.Set(3, 2, '#')
	if s.GetCell(3, 2).Color != ColorDefault {
		t.Error("Set should reset the color")
	}
	if s.GetCell(9, 9).Color != ColorDefault {
		t.Error("out-of-bounds cell should be uncolored")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetWithColor(1, 1, 'X', ColorRed)
	s.Clear()

	if cell := s.GetCell(1, 1); cell != (Cell{Rune: ' '}) {
		t.Errorf("after Clear got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 1, "Hello")
	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("DrawText wrote %q", got)
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("DrawText should write the visible part")
	}

	// One cell per rune
	s.DrawTextWithColor(0, 2, "●●○", ColorYellow)
	if s.Get(1, 2) != '●' || s.Get(2, 2) != '○' || s.Get(3, 2) != ' ' {
		t.Errorf("multi-byte text misplaced: %q", s.Row(2))
	}
	if s.GetCell(2, 2).Color != ColorYellow {
		t.Error("DrawTextWithColor should color every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(2, "Hi")

	if x := s.CenterX("Hi"); x != 9 {
		t.Errorf("CenterX = %d, expected 9", x)
	}
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("centered text misplaced: %q", s.Row(2))
	}
	if x := s.CenterX("══"); x != 9 {
		t.Errorf("CenterX should count runes, got %d", x)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(4, 2, 5, 5), '#', ColorOrange)

	want := []string{
		"      ",
		"      ",
		"    ##",
		"    ##",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(5, 3).Color != ColorOrange {
		t.Error("FillRect should color the cells")
	}

	// Fully outside does nothing
	s.FillRect(NewRect(-5, -5, 3, 3), 'x', ColorRed)
	if strings.Contains(s.String(), "x") {
		t.Error("FillRect outside the screen should draw nothing")
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(5, 6)
	s.DrawVLine(3, 2, 10, '│', ColorGray)

	for y := 0; y < 6; y++ {
		want := ' '
		if y >= 2 {
			want = '│'
		}
		if s.Get(3, y) != want {
			t.Errorf("(3, %d) = %q, expected %q", y, s.Get(3, y), want)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.FillRect(s.Bounds(), '.', ColorDefault)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	want := []string{
		"........",
		".┌───┐..",
		".│   │..",
		".│   │..",
		".└───┘..",
		"........",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(1, 1).Color != ColorWhite || s.GetCell(2, 2).Color != ColorDefault {
		t.Error("outline should be colored and the inside plain")
	}

	// Too small to outline
	s.DrawBox(NewRect(0, 0, 1, 1), ColorWhite)
	if s.Get(0, 0) != '.' {
		t.Error("1x1 box should draw nothing")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "Hello")

	s.Resize(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d after resize", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hello     " {
		t.Errorf("row 0 = %q, content should be kept and padded", got)
	}
	if got := s.Row(4); got != strings.Repeat(" ", 10) {
		t.Errorf("new row = %q, expected blank", got)
	}

	s.Resize(3, 2)
	if got := s.Row(0); got != "Hel" {
		t.Errorf("row 0 = %q after shrink", got)
	}
	if got := s.Row(-1); got != "   " {
		t.Errorf("out-of-bounds Row = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, "DEF")

	if got := s.String(); got != "ABC\nDEF" {
		t.Errorf("String() = %q, expected %q", got, "ABC\nDEF")
	}
}
