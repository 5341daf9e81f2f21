package loom

// Widget is the capability contract every node in the tree implements.
//
// A widget's valid call sequence within one update cycle is strictly
// Update -> Layout -> Position -> Paint, each exactly once, driven by the
// Node that owns it. Calling Position or Paint before Layout leaves the
// geometry undefined; that's a contract violation caught in tests, not a
// recoverable condition.
type Widget interface {
	// Kind returns the widget's tag name, e.g. "hstack".
	Kind() string

	// Update re-reads the widget's configuration from the cycle's resolved
	// attributes. Side effect only; no geometry is computed.
	Update(attrs Attributes)

	// Layout computes the widget's size within the context's constraints,
	// laying out children through the context as it goes.
	Layout(ctx *LayoutContext) Size

	// Position assigns absolute coordinates to the children, given the
	// widget's own origin. Sizes from the layout pass are already in place.
	Position(pos Pos, children []*Node)

	// Paint draws the widget and its children onto the scoped surface
	// region. Children are painted in insertion order: last on top.
	Paint(ctx *PaintContext, children []*Node)
}

// LayoutContext carries the constraints and child nodes through one
// widget's layout call. The constraints are the widget's own copy; the
// stacking strategies mutate them freely while iterating children.
type LayoutContext struct {
	Constraints Constraints
	Children    []*Node
}

// PaintContext is the scoped surface capability handed to one paint call.
// It grants write access to the widget's own rectangle and carries the
// widget's absolute position so child regions can be derived from child
// positions. It must not be retained after the call returns.
type PaintContext struct {
	*Region
	Pos Pos
}

// PaintChild derives a sub-region for the child from its assigned position
// and size, then paints the child into it. The sub-region is clipped to the
// parent's rectangle, so an oversized or off-screen child is truncated
// rather than escaping its parent.
func (ctx *PaintContext) PaintChild(child *Node) {
	rel := child.pos.Sub(ctx.Pos)
	sub := ctx.Sub(rel.X, rel.Y, child.size.Width, child.size.Height)
	child.Paint(sub)
}

// paintInOrder is the generic composite paint: children at their assigned
// positions, in insertion order.
func paintInOrder(ctx *PaintContext, children []*Node) {
	for _, child := range children {
		ctx.PaintChild(child)
	}
}

// sizing holds the four optional declared dimensions recognized by every
// container widget: width, height, min-width, min-height.
type sizing struct {
	width     OptInt
	height    OptInt
	minWidth  OptInt
	minHeight OptInt
}

// update re-resolves the declared dimensions from the cycle's attributes.
func (s *sizing) update(attrs Attributes) {
	s.width = attrs.OptInt("width")
	s.height = attrs.OptInt("height")
	s.minWidth = attrs.OptInt("min-width")
	s.minHeight = attrs.OptInt("min-height")
}

// apply tightens and raises the constraints from the declared dimensions.
// Raising and tightening commute; a width declared below min-width resolves
// in favor of the min floor.
func (s *sizing) apply(c *Constraints) {
	if s.minWidth.Set {
		c.RaiseMinWidth(s.minWidth.Value)
	}
	if s.minHeight.Set {
		c.RaiseMinHeight(s.minHeight.Value)
	}
	if s.width.Set {
		c.TightenWidth(s.width.Value)
	}
	if s.height.Set {
		c.TightenHeight(s.height.Value)
	}
}

// validateSizing rejects attribute values that cannot be coerced to a
// non-negative size. This is the construction-time error surface; once a
// widget exists, layout never fails.
func validateSizing(tag string, attrs Attributes) error {
	for _, name := range []string{"width", "height", "min-width", "min-height"} {
		raw, present := attrs[name]
		if !present {
			continue
		}
		n, ok := attrs.Int(name)
		if !ok || n < 0 {
			return badAttr(tag, name, raw)
		}
	}
	return nil
}
