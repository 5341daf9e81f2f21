package loom

// Axis selects the main axis of a stacking strategy.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Direction selects the iteration order of a stacking strategy. Reverse
// is the one sanctioned deviation from insertion order: children are laid
// out and positioned back-to-front for right-to-left or bottom-to-top
// stacking. Paint order is unaffected.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// Strategy is a pluggable layout-pass algorithm for container widgets:
// given a layout context, lay out every child and return the combined
// outer size. Strategies are total; malformed bounds are clamped, never
// reported.
type Strategy func(ctx *LayoutContext) Size

// StackStrategy returns the budgeted main-axis strategy used by HStack and
// VStack. Each child is laid out with the main-axis max reduced by the
// space already consumed by prior siblings; once the budget is exhausted,
// remaining children receive a zero main-axis budget and report degenerate
// sizes rather than erroring. The container's size is the consumed main
// extent by the largest cross extent, clamped into the original bounds.
func StackStrategy(axis Axis, dir Direction) Strategy {
	return func(ctx *LayoutContext) Size {
		return stackLayout(ctx, axis, dir)
	}
}

// OverlayStrategy returns the stacked strategy used by ZStack. Every child
// receives the identical, full constraints and is laid out independently;
// the container takes the component-wise maximum of the child sizes, and
// smaller children overlap within the bounds of larger ones at paint time.
func OverlayStrategy() Strategy {
	return overlayLayout
}

func stackLayout(ctx *LayoutContext, axis Axis, dir Direction) Size {
	bounds := ctx.Constraints
	children := ctx.Children

	var consumed, cross int
	for i := range children {
		child := children[i]
		if dir == Reverse {
			child = children[len(children)-1-i]
		}

		// Each child gets its own derived copy with the remaining budget.
		cc := bounds
		if axis == Horizontal {
			cc.ShrinkWidth(consumed)
		} else {
			cc.ShrinkHeight(consumed)
		}

		sz := child.Layout(cc)

		// Spacers consume main-axis budget but don't stretch the cross
		// axis; the strategy knows them so they don't need to know the
		// stack's orientation.
		_, isSpacer := child.Widget().(*Spacer)

		if axis == Horizontal {
			consumed += sz.Width
			if !isSpacer && sz.Height > cross {
				cross = sz.Height
			}
		} else {
			consumed += sz.Height
			if !isSpacer && sz.Width > cross {
				cross = sz.Width
			}
		}
	}

	if axis == Horizontal {
		return bounds.ClampSize(Size{Width: consumed, Height: cross})
	}
	return bounds.ClampSize(Size{Width: cross, Height: consumed})
}

func overlayLayout(ctx *LayoutContext) Size {
	bounds := ctx.Constraints

	var outer Size
	for _, child := range ctx.Children {
		outer = outer.Max(child.Layout(bounds))
	}
	return bounds.ClampSize(outer)
}
