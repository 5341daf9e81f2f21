package loom

// ZStack draws its children on top of each other. Every child is laid out
// with the same full constraints and positioned at the same origin; at
// paint time each child is painted into the same sub-region in insertion
// order, so later children occlude earlier ones cell by cell. To put
// something on top, add it last.
//
// A classic use is a title over a border:
//
//	┌] Title [─────────┐
//	│                  │
//	└──────────────────┘
type ZStack struct {
	sizing
}

// NewZStack returns a zstack with no declared dimensions.
func NewZStack() *ZStack {
	return &ZStack{}
}

// Kind implements Widget.
func (z *ZStack) Kind() string {
	return "zstack"
}

// Update implements Widget.
func (z *ZStack) Update(attrs Attributes) {
	z.sizing.update(attrs)
}

// Layout implements Widget: every child receives identical constraints and
// the stack takes the component-wise maximum of their sizes.
func (z *ZStack) Layout(ctx *LayoutContext) Size {
	z.sizing.apply(&ctx.Constraints)
	return overlayLayout(ctx)
}

// Position implements Widget: every child sits at the stack's own origin.
// Overlap is the point.
func (z *ZStack) Position(pos Pos, children []*Node) {
	for _, child := range children {
		child.Position(pos)
	}
}

// Paint implements Widget: each child is painted into a sub-region anchored
// at the stack's own top-left corner, in insertion order. Last wins at any
// overlapping cell; cells a later, smaller child doesn't cover keep what an
// earlier sibling painted there.
func (z *ZStack) Paint(ctx *PaintContext, children []*Node) {
	for _, child := range children {
		sz := child.Size()
		sub := ctx.Sub(0, 0, sz.Width, sz.Height)
		child.Paint(sub)
	}
}

func zstackFactory(attrs Attributes) (Widget, error) {
	if err := validateSizing("zstack", attrs); err != nil {
		return nil, err
	}
	w := NewZStack()
	w.Update(attrs)
	return w, nil
}
