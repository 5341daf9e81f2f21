package loom

// HStack lays out its children horizontally, left to right:
//
//	┌─┐┌─┐┌─┐
//	│1││2││3│
//	└─┘└─┘└─┘
//
// Children that don't fit inside the width budget are laid out with a zero
// budget and render empty. A "direction" attribute of "reverse" stacks
// right to left instead.
type HStack struct {
	sizing
	dir Direction
}

// NewHStack returns an hstack with no declared dimensions.
func NewHStack() *HStack {
	return &HStack{}
}

// Kind implements Widget.
func (h *HStack) Kind() string {
	return "hstack"
}

// Update implements Widget.
func (h *HStack) Update(attrs Attributes) {
	h.sizing.update(attrs)
	h.dir = directionAttr(attrs)
}

// Layout implements Widget: tighten the constraints from the declared
// dimensions, then hand the children to the horizontal stacking strategy.
func (h *HStack) Layout(ctx *LayoutContext) Size {
	h.sizing.apply(&ctx.Constraints)
	return stackLayout(ctx, Horizontal, h.dir)
}

// Position implements Widget: children are placed at an accumulating x
// offset in layout order; the y coordinate is always the origin's.
func (h *HStack) Position(pos Pos, children []*Node) {
	p := pos
	for i := range children {
		child := children[i]
		if h.dir == Reverse {
			child = children[len(children)-1-i]
		}
		child.Position(p)
		p.X += child.Size().Width
	}
}

// Paint implements Widget.
func (h *HStack) Paint(ctx *PaintContext, children []*Node) {
	paintInOrder(ctx, children)
}

func hstackFactory(attrs Attributes) (Widget, error) {
	if err := validateSizing("hstack", attrs); err != nil {
		return nil, err
	}
	if err := validateDirection("hstack", attrs); err != nil {
		return nil, err
	}
	w := NewHStack()
	w.Update(attrs)
	return w, nil
}

// directionAttr reads the optional "direction" attribute. Anything other
// than "reverse" means forward.
func directionAttr(attrs Attributes) Direction {
	if v, ok := attrs.Str("direction"); ok && v == "reverse" {
		return Reverse
	}
	return Forward
}

func validateDirection(tag string, attrs Attributes) error {
	raw, present := attrs["direction"]
	if !present {
		return nil
	}
	v, ok := raw.(string)
	if !ok || (v != "forward" && v != "reverse") {
		return badAttr(tag, "direction", raw)
	}
	return nil
}
