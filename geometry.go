package loom

// Size is the width and height of a widget, as computed by the layout pass.
type Size struct {
	Width  int
	Height int
}

// ZeroSize is the degenerate size reported by widgets with no space to occupy.
var ZeroSize = Size{}

// IsZero returns true if the size has no area on either axis.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	if other.Width > s.Width {
		s.Width = other.Width
	}
	if other.Height > s.Height {
		s.Height = other.Height
	}
	return s
}

// Pos is an absolute screen coordinate, as assigned by the position pass.
// Coordinates may go negative transiently during off-screen clipping math.
type Pos struct {
	X int
	Y int
}

// Add returns the position offset by dx, dy.
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the offset of p relative to other.
func (p Pos) Sub(other Pos) Pos {
	return Pos{X: p.X - other.X, Y: p.Y - other.Y}
}
