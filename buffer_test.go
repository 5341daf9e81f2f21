package loom

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				if c := buf.Get(x, y); c.Rune != ' ' {
					t.Fatalf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}
		for _, tt := range tests {
			if got := buf.InBounds(tt.x, tt.y); got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))
		buf.Set(5, 5, cell)
		if got := buf.Get(5, 5); got != cell {
			t.Errorf("got %+v, want %+v", got, cell)
		}
		// Out of bounds reads come back empty, writes are dropped.
		buf.Set(-1, -1, cell)
		if oob := buf.Get(-1, -1); oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}
	})

	t.Run("BorderMerge", func(t *testing.T) {
		// A vertical meeting a horizontal in the same cell becomes a
		// junction character.
		buf := NewBuffer(5, 5)
		buf.Set(2, 2, NewCell(BoxHorizontal, DefaultStyle()))
		buf.Set(2, 2, NewCell(BoxVertical, DefaultStyle()))
		if got := buf.Get(2, 2).Rune; got != BoxCross {
			t.Errorf("expected %q, got %q", BoxCross, got)
		}

		// A non-border rune simply overwrites.
		buf.Set(2, 2, NewCell('x', DefaultStyle()))
		if got := buf.Get(2, 2).Rune; got != 'x' {
			t.Errorf("expected 'x', got %q", got)
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.Set(1, 1, NewCell('k', DefaultStyle()))
		buf.Resize(8, 4)
		if buf.Width() != 8 || buf.Height() != 4 {
			t.Errorf("expected 8x4, got %dx%d", buf.Width(), buf.Height())
		}
		if got := buf.Get(1, 1).Rune; got != 'k' {
			t.Errorf("content not preserved, got %q", got)
		}
		buf.Resize(1, 1)
		if got := buf.Get(1, 1).Rune; got != ' ' {
			t.Errorf("shrunk buffer should drop content, got %q", got)
		}
	})
}

func TestRegion(t *testing.T) {
	t.Run("RelativeWrites", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		r := buf.Region(3, 1, 4, 2)
		r.WriteString(0, 0, "hi", DefaultStyle())
		if got := buf.Get(3, 1).Rune; got != 'h' {
			t.Errorf("expected 'h' at (3,1), got %q", got)
		}
		if got := buf.Get(4, 1).Rune; got != 'i' {
			t.Errorf("expected 'i' at (4,1), got %q", got)
		}
	})

	t.Run("ClippedToOwnExtent", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		r := buf.Region(0, 0, 3, 1)
		r.WriteString(0, 0, "abcdef", DefaultStyle())
		if got := buf.Line(0); got != "abc" {
			t.Errorf("expected %q, got %q", "abc", got)
		}
		r.Set(0, 2, NewCell('z', DefaultStyle()))
		if got := buf.Get(0, 2).Rune; got != ' ' {
			t.Error("write below region extent should be dropped")
		}
	})

	t.Run("SubClipsToParent", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		parent := buf.Region(2, 1, 4, 2)

		// Child extends past the parent's right edge; the overhang is
		// clipped even though the buffer itself has room there.
		child := parent.Sub(2, 0, 6, 1)
		child.WriteString(0, 0, "XXXXXX", DefaultStyle())
		if got := buf.Line(1); got != "    XX" {
			t.Errorf("expected %q, got %q", "    XX", got)
		}
	})

	t.Run("NegativeOffsetSub", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		parent := buf.Region(2, 2, 5, 2)

		// Child anchored above and left of the parent; only the part
		// inside the parent lands.
		child := parent.Sub(-1, -1, 4, 2)
		child.Fill(NewCell('#', DefaultStyle()))
		if got := buf.Get(1, 1).Rune; got != ' ' {
			t.Error("write outside parent should be dropped")
		}
		if got := buf.Get(2, 2).Rune; got != '#' {
			t.Errorf("expected '#' inside parent, got %q", got)
		}
	})

	t.Run("ZeroSize", func(t *testing.T) {
		buf := NewBuffer(5, 5)
		r := buf.Region(1, 1, 0, 0)
		r.Set(0, 0, NewCell('x', DefaultStyle()))
		r.Fill(NewCell('x', DefaultStyle()))
		if got := buf.String(); got != NewBuffer(5, 5).String() {
			t.Error("zero-size region must not write anything")
		}
	})
}
