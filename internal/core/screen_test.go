package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	// Out of bounds is ignored, not a panic
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get should return space, got %q", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(8, 4)

	s.SetCell(1, 1, '*', ColorBrightCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != '*' || cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(1,1) = %+v, want {'*' BrightCyan}", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Set should write ColorDefault, got %v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetCell(0, 0, 'x', ColorRed)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should blank cells, got %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(6, 4)

	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Resize should preserve in-range content, got %q", got)
	}
	if s.Width() != 6 || s.Height() != 4 {
		t.Errorf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}

	// Grow back; the clipped cell is gone
	s.Resize(12, 6)
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("clipped cell should be blank after grow, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(1, 1, "hello")

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, want to contain \"hello\"", got)
	}

	// Clipped text does not wrap
	s.DrawText(8, 0, "abc")
	if got := s.Get(0, 1); got == 'c' {
		t.Error("DrawText should clip, not wrap")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hi", ColorBrightGreen)

	for i := 0; i < 2; i++ {
		if c := s.GetCell(i, 0).Color; c != ColorBrightGreen {
			t.Errorf("cell %d color = %v, want BrightGreen", i, c)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(1, 1, 5, 3))

	if got := s.Get(1, 1); got != '┌' {
		t.Errorf("top-left = %q, want '┌'", got)
	}
	if got := s.Get(5, 3); got != '┘' {
		t.Errorf("bottom-right = %q, want '┘'", got)
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFromRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    Color
	}{
		{"white", 1, 1, 1, ColorBrightWhite},
		{"red", 1, 0, 0, ColorBrightRed},
		{"green", 0, 1, 0, ColorBrightGreen},
		{"blue", 0, 0, 1, ColorBrightBlue},
		{"yellow", 1, 1, 0, ColorBrightYellow},
		{"cyan", 0, 1, 1, ColorBrightCyan},
		{"magenta", 1, 0, 1, ColorBrightMagenta},
		{"orange", 1, 0.5, 0, ColorOrange},
		{"dim red", 0.5, 0, 0, ColorRed},
		{"black", 0, 0, 0, ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("FromRGB(%v,%v,%v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}
