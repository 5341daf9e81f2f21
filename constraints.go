package loom

// Constraints are the min/max width and height bounds handed down during a
// layout pass. They are passed by value: every child receives its own copy
// derived from, but independent of, the parent's.
//
// The invariant min <= max holds after every mutation. When a declared size
// and a declared minimum conflict, the min floor wins: the max bound is
// clamped up to min rather than letting the bounds invert.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Loose returns constraints with zero minimums and the given maximums.
func Loose(width, height int) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// Tight returns constraints where both axes are fixed to the given size.
func Tight(width, height int) Constraints {
	return Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MinHeight: height,
		MaxHeight: height,
	}
}

// normalize clamps the bounds so they are non-negative and min <= max.
// Layout is total: malformed bounds are repaired here, never reported.
func (c *Constraints) normalize() {
	if c.MinWidth < 0 {
		c.MinWidth = 0
	}
	if c.MinHeight < 0 {
		c.MinHeight = 0
	}
	if c.MaxWidth < c.MinWidth {
		c.MaxWidth = c.MinWidth
	}
	if c.MaxHeight < c.MinHeight {
		c.MaxHeight = c.MinHeight
	}
}

// TightenWidth lowers the max width bound to w. The bound is never raised,
// and never drops below the min floor.
func (c *Constraints) TightenWidth(w int) {
	if w < c.MaxWidth {
		c.MaxWidth = w
	}
	if c.MaxWidth < c.MinWidth {
		c.MaxWidth = c.MinWidth
	}
}

// TightenHeight lowers the max height bound to h. The bound is never raised,
// and never drops below the min floor.
func (c *Constraints) TightenHeight(h int) {
	if h < c.MaxHeight {
		c.MaxHeight = h
	}
	if c.MaxHeight < c.MinHeight {
		c.MaxHeight = c.MinHeight
	}
}

// RaiseMinWidth raises the min width floor to w. The floor is never lowered.
// If the floor passes the max bound, the max is raised with it.
func (c *Constraints) RaiseMinWidth(w int) {
	if w > c.MinWidth {
		c.MinWidth = w
	}
	if c.MaxWidth < c.MinWidth {
		c.MaxWidth = c.MinWidth
	}
}

// RaiseMinHeight raises the min height floor to h. The floor is never
// lowered. If the floor passes the max bound, the max is raised with it.
func (c *Constraints) RaiseMinHeight(h int) {
	if h > c.MinHeight {
		c.MinHeight = h
	}
	if c.MaxHeight < c.MinHeight {
		c.MaxHeight = c.MinHeight
	}
}

// ShrinkWidth reduces the max width by the budget already consumed, floored
// at zero. The min floor follows the max down so a child is never asked for
// more than it can be given.
func (c *Constraints) ShrinkWidth(consumed int) {
	c.MaxWidth -= consumed
	if c.MaxWidth < 0 {
		c.MaxWidth = 0
	}
	if c.MinWidth > c.MaxWidth {
		c.MinWidth = c.MaxWidth
	}
}

// ShrinkHeight reduces the max height by the budget already consumed, floored
// at zero. The min floor follows the max down.
func (c *Constraints) ShrinkHeight(consumed int) {
	c.MaxHeight -= consumed
	if c.MaxHeight < 0 {
		c.MaxHeight = 0
	}
	if c.MinHeight > c.MaxHeight {
		c.MinHeight = c.MaxHeight
	}
}

// ClampWidth clamps w into the width bounds.
func (c Constraints) ClampWidth(w int) int {
	if w < c.MinWidth {
		return c.MinWidth
	}
	if w > c.MaxWidth {
		return c.MaxWidth
	}
	return w
}

// ClampHeight clamps h into the height bounds.
func (c Constraints) ClampHeight(h int) int {
	if h < c.MinHeight {
		return c.MinHeight
	}
	if h > c.MaxHeight {
		return c.MaxHeight
	}
	return h
}

// ClampSize clamps both axes of a size into the bounds.
func (c Constraints) ClampSize(s Size) Size {
	return Size{
		Width:  c.ClampWidth(s.Width),
		Height: c.ClampHeight(s.Height),
	}
}

// MaxSize returns the upper bound as a size.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}
