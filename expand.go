package loom

// Expand fills all the space its constraints allow on both axes,
// regardless of how little its child needs. Inside a ZStack it is the
// usual bottom layer: a border or background stretched over the full
// stack, with the real content stacked on top.
type Expand struct {
	sizing
}

// NewExpand returns an expand widget.
func NewExpand() *Expand {
	return &Expand{}
}

// Kind implements Widget.
func (e *Expand) Kind() string {
	return "expand"
}

// Update implements Widget.
func (e *Expand) Update(attrs Attributes) {
	e.sizing.update(attrs)
}

// Layout implements Widget: children are laid out with the full
// constraints, the expand itself reports the upper bound.
func (e *Expand) Layout(ctx *LayoutContext) Size {
	e.sizing.apply(&ctx.Constraints)
	bounds := ctx.Constraints
	for _, child := range ctx.Children {
		child.Layout(bounds)
	}
	return bounds.MaxSize()
}

// Position implements Widget: children sit at the expand's own origin.
func (e *Expand) Position(pos Pos, children []*Node) {
	for _, child := range children {
		child.Position(pos)
	}
}

// Paint implements Widget.
func (e *Expand) Paint(ctx *PaintContext, children []*Node) {
	paintInOrder(ctx, children)
}

func expandFactory(attrs Attributes) (Widget, error) {
	if err := validateSizing("expand", attrs); err != nil {
		return nil, err
	}
	w := NewExpand()
	w.Update(attrs)
	return w, nil
}

// Spacer is empty space that eats all the remaining budget in its stack.
// Children placed after a spacer in an HStack or VStack are pushed out of
// the budget and render empty.
type Spacer struct{}

// NewSpacer returns a spacer.
func NewSpacer() *Spacer {
	return &Spacer{}
}

// Kind implements Widget.
func (s *Spacer) Kind() string {
	return "spacer"
}

// Update implements Widget.
func (s *Spacer) Update(attrs Attributes) {}

// Layout implements Widget.
func (s *Spacer) Layout(ctx *LayoutContext) Size {
	return ctx.Constraints.MaxSize()
}

// Position implements Widget.
func (s *Spacer) Position(pos Pos, children []*Node) {}

// Paint implements Widget.
func (s *Spacer) Paint(ctx *PaintContext, children []*Node) {}

func spacerFactory(attrs Attributes) (Widget, error) {
	return NewSpacer(), nil
}
