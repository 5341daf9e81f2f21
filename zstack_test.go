package loom

import "testing"

func TestZStack(t *testing.T) {
	t.Run("PlaceOnTop", func(t *testing.T) {
		// Later children overwrite earlier ones cell by cell; where a
		// shorter child doesn't reach, the earlier paint shows through.
		expr := El("zstack", nil, ElText("000"), ElText("11"), ElText("2"))
		buf, node := testRender(t, expr, 10, 3)

		if got := trimmed(buf); got != "210" {
			t.Errorf("rendered %q, want %q", got, "210")
		}
		if node.Size() != (Size{Width: 3, Height: 1}) {
			t.Errorf("container size %+v, want 3x1", node.Size())
		}
	})

	t.Run("SizeIsComponentWiseMax", func(t *testing.T) {
		expr := El("zstack", nil,
			El("border", nil, ElText("wide........text")),
			El("vstack", nil, ElText("a"), ElText("b"), ElText("c"), ElText("d")),
		)
		_, node := testRender(t, expr, 40, 10)

		kids := node.Children()
		want := Size{
			Width:  max(kids[0].Size().Width, kids[1].Size().Width),
			Height: max(kids[0].Size().Height, kids[1].Size().Height),
		}
		if node.Size() != want {
			t.Errorf("container %+v, want %+v", node.Size(), want)
		}
	})

	t.Run("ChildrenShareOrigin", func(t *testing.T) {
		expr := El("zstack", nil, ElText("000"), ElText("11"), ElText("2"))
		_, node := testRender(t, expr, 10, 3)
		for i, child := range node.Children() {
			if child.Pos() != (Pos{}) {
				t.Errorf("child %d at %+v, want origin", i, child.Pos())
			}
		}
	})

	t.Run("BorderTitle", func(t *testing.T) {
		expr := El("zstack", nil,
			El("border", nil, El("expand", nil)),
			El("offset", map[string]any{"left": 2}, ElText("] Title [")),
		)
		buf, _ := testRender(t, expr, 20, 5)

		want := "" +
			"┌─] Title [────────┐\n" +
			"│                  │\n" +
			"│                  │\n" +
			"│                  │\n" +
			"└──────────────────┘"
		if got := trimmed(buf); got != want {
			t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
		}
	})
}

// recordingWidget captures the constraints handed to its layout call.
type recordingWidget struct {
	got Constraints
}

func (r *recordingWidget) Kind() string { return "recording" }

func (r *recordingWidget) Update(attrs Attributes) {}

func (r *recordingWidget) Position(pos Pos, children []*Node) {}

func (r *recordingWidget) Paint(ctx *PaintContext, children []*Node) {}

func (r *recordingWidget) Layout(ctx *LayoutContext) Size {
	r.got = ctx.Constraints
	return ctx.Constraints.ClampSize(Size{Width: 1, Height: 1})
}

func TestZStackIdenticalConstraints(t *testing.T) {
	recorders := []*recordingWidget{{}, {}, {}}
	node := NewNode(NewZStack(),
		NewNode(recorders[0]),
		NewNode(recorders[1]),
		NewNode(recorders[2]),
	)

	node.Layout(Loose(17, 9))

	for i, r := range recorders {
		if r.got != recorders[0].got {
			t.Errorf("child %d saw %+v, child 0 saw %+v", i, r.got, recorders[0].got)
		}
		if r.got.MaxWidth != 17 || r.got.MaxHeight != 9 {
			t.Errorf("child %d saw %+v, want full 17x9 bounds", i, r.got)
		}
	}
}
