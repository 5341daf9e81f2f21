package loom

// Offset places its single child at a "left"/"top" offset inside itself.
// Stacked over a border in a ZStack it is how a title gets inset into the
// border's top edge:
//
//	┌] Title [──────┐
//	│               │
//	└───────────────┘
type Offset struct {
	left OptInt
	top  OptInt
}

// NewOffset returns an offset widget with no displacement.
func NewOffset() *Offset {
	return &Offset{}
}

// Kind implements Widget.
func (o *Offset) Kind() string {
	return "offset"
}

// Update implements Widget.
func (o *Offset) Update(attrs Attributes) {
	o.left = attrs.OptInt("left")
	o.top = attrs.OptInt("top")
}

// Layout implements Widget: the child is laid out in the space left over
// after the displacement, and the offset reports the child's size plus the
// displacement, clamped into bounds.
func (o *Offset) Layout(ctx *LayoutContext) Size {
	bounds := ctx.Constraints

	inner := ZeroSize
	if len(ctx.Children) > 0 {
		cc := bounds
		cc.ShrinkWidth(o.left.Value)
		cc.ShrinkHeight(o.top.Value)
		inner = ctx.Children[0].Layout(cc)
	}

	return bounds.ClampSize(Size{
		Width:  inner.Width + o.left.Value,
		Height: inner.Height + o.top.Value,
	})
}

// Position implements Widget.
func (o *Offset) Position(pos Pos, children []*Node) {
	if len(children) > 0 {
		children[0].Position(pos.Add(o.left.Value, o.top.Value))
	}
}

// Paint implements Widget.
func (o *Offset) Paint(ctx *PaintContext, children []*Node) {
	if len(children) > 0 {
		ctx.PaintChild(children[0])
	}
}

func offsetFactory(attrs Attributes) (Widget, error) {
	for _, name := range []string{"left", "top"} {
		raw, present := attrs[name]
		if !present {
			continue
		}
		n, ok := attrs.Int(name)
		if !ok || n < 0 {
			return nil, badAttr("offset", name, raw)
		}
	}
	w := NewOffset()
	w.Update(attrs)
	return w, nil
}
