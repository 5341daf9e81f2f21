package loom

import "testing"

func TestHStack(t *testing.T) {
	t.Run("ThreeBorderedChildren", func(t *testing.T) {
		buf, node := testRender(t, El("hstack", nil, borderedDigits(3)...), 15, 5)

		want := "" +
			"┌─┐┌─┐┌─┐\n" +
			"│0││1││2│\n" +
			"└─┘└─┘└─┘"
		if got := trimmed(buf); got != want {
			t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
		}

		if node.Size() != (Size{Width: 9, Height: 3}) {
			t.Errorf("container size %+v, want 9x3", node.Size())
		}
		for i, wantX := range []int{0, 3, 6} {
			if got := node.Children()[i].Pos(); got != (Pos{X: wantX, Y: 0}) {
				t.Errorf("child %d at %+v, want x=%d", i, got, wantX)
			}
		}
	})

	t.Run("FixedWidthAdmitsTwo", func(t *testing.T) {
		expr := El("hstack", map[string]any{"width": 6}, borderedDigits(10)...)
		buf, node := testRender(t, expr, 20, 6)

		want := "" +
			"┌─┐┌─┐\n" +
			"│0││1│\n" +
			"└─┘└─┘"
		if got := trimmed(buf); got != want {
			t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
		}

		// Children beyond the budget are laid out with zero width and
		// report degenerate sizes.
		for i, child := range node.Children() {
			sz := child.Size()
			if i < 2 && sz != (Size{Width: 3, Height: 3}) {
				t.Errorf("child %d size %+v, want 3x3", i, sz)
			}
			if i >= 2 && sz.Width != 0 {
				t.Errorf("child %d size %+v, want zero width", i, sz)
			}
		}
	})

	t.Run("WidthSumNeverExceedsBudget", func(t *testing.T) {
		for _, maxW := range []int{0, 1, 4, 7, 9, 100} {
			_, node := testRender(t, El("hstack", nil, borderedDigits(5)...), maxW, 5)
			sum := 0
			for _, child := range node.Children() {
				sum += child.Size().Width
			}
			if sum > maxW {
				t.Errorf("max %d: children consumed %d", maxW, sum)
			}
		}
	})

	t.Run("CrossAxisIsTallestChild", func(t *testing.T) {
		expr := El("hstack", nil,
			ElText("a"),
			El("border", nil, ElText("b")),
		)
		_, node := testRender(t, expr, 20, 6)
		if node.Size().Height != 3 {
			t.Errorf("height %d, want 3 (tallest child)", node.Size().Height)
		}
	})

	t.Run("Reverse", func(t *testing.T) {
		expr := El("hstack", map[string]any{"direction": "reverse"},
			ElText("aa"), ElText("b"))
		buf, node := testRender(t, expr, 10, 2)

		// Layout order is reversed: "b" is placed first, at the origin.
		if got := node.Children()[1].Pos(); got != (Pos{X: 0, Y: 0}) {
			t.Errorf("last child at %+v, want origin", got)
		}
		if got := node.Children()[0].Pos(); got != (Pos{X: 1, Y: 0}) {
			t.Errorf("first child at %+v, want x=1", got)
		}
		if got := trimmed(buf); got != "baa" {
			t.Errorf("rendered %q, want %q", got, "baa")
		}
	})

	t.Run("MinWidthExpands", func(t *testing.T) {
		expr := El("hstack", map[string]any{"min-width": 8}, ElText("hi"))
		_, node := testRender(t, expr, 20, 5)
		if node.Size().Width != 8 {
			t.Errorf("width %d, want min-width 8", node.Size().Width)
		}
	})

	t.Run("SpacerPushesOutBudget", func(t *testing.T) {
		expr := El("hstack", nil, ElText("a"), El("spacer", nil), ElText("z"))
		_, node := testRender(t, expr, 10, 2)
		// The spacer ate the remaining 9 columns; "z" got nothing.
		if got := node.Children()[2].Size().Width; got != 0 {
			t.Errorf("trailing child width %d, want 0", got)
		}
		if got := node.Size(); got != (Size{Width: 10, Height: 1}) {
			t.Errorf("container %+v, want 10x1", got)
		}
	})
}

func TestHStackPositionIdempotent(t *testing.T) {
	_, node := testRender(t, El("hstack", nil, borderedDigits(3)...), 15, 5)

	first := make([]Pos, 0, 3)
	node.walk(func(n *Node) { first = append(first, n.Pos()) })

	node.Position(Pos{})
	node.Position(Pos{})

	i := 0
	node.walk(func(n *Node) {
		if n.Pos() != first[i] {
			t.Errorf("node %d drifted: %+v vs %+v", i, n.Pos(), first[i])
		}
		i++
	})
}
