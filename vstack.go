package loom

// VStack lays out its children vertically, top to bottom. It is the
// symmetric twin of HStack with the axes swapped; a "direction" attribute
// of "reverse" stacks bottom to top.
type VStack struct {
	sizing
	dir Direction
}

// NewVStack returns a vstack with no declared dimensions.
func NewVStack() *VStack {
	return &VStack{}
}

// Kind implements Widget.
func (v *VStack) Kind() string {
	return "vstack"
}

// Update implements Widget.
func (v *VStack) Update(attrs Attributes) {
	v.sizing.update(attrs)
	v.dir = directionAttr(attrs)
}

// Layout implements Widget.
func (v *VStack) Layout(ctx *LayoutContext) Size {
	v.sizing.apply(&ctx.Constraints)
	return stackLayout(ctx, Vertical, v.dir)
}

// Position implements Widget: children are placed at an accumulating y
// offset in layout order; the x coordinate is always the origin's.
func (v *VStack) Position(pos Pos, children []*Node) {
	p := pos
	for i := range children {
		child := children[i]
		if v.dir == Reverse {
			child = children[len(children)-1-i]
		}
		child.Position(p)
		p.Y += child.Size().Height
	}
}

// Paint implements Widget.
func (v *VStack) Paint(ctx *PaintContext, children []*Node) {
	paintInOrder(ctx, children)
}

func vstackFactory(attrs Attributes) (Widget, error) {
	if err := validateSizing("vstack", attrs); err != nil {
		return nil, err
	}
	if err := validateDirection("vstack", attrs); err != nil {
		return nil, err
	}
	w := NewVStack()
	w.Update(attrs)
	return w, nil
}
