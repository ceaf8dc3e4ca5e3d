package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	// Out of bounds is silent.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(0, 0, 4, 3), '#', ColorRed)
	s.Clear()

	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("after Clear String() = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(8, 0, "Hello")
	if got := s.Row(0); got != "        He" {
		t.Errorf("clipped row = %q", got)
	}

	s.DrawTextCentered(1, "ABCD", ColorYellow)
	if got := s.Row(1); got != "   ABCD   " {
		t.Errorf("centered row = %q", got)
	}
	if s.GetCell(3, 1).Color != ColorYellow {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorWhite)

	want := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant:\n%s", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("resize should leave a blank buffer")
	}

	s.DrawText(0, 0, "Keep")
	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "Keep") {
		t.Error("resizing to the same size must not clear")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(6, 2)
	if got := s.Row(-1); got != "      " {
		t.Errorf("Row(-1) = %q", got)
	}
}
