package loom

// Box drawing characters.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
	BoxDoubleHorizontal   = '═'
	BoxDoubleVertical     = '║'
	BoxDoubleTopLeft      = '╔'
	BoxDoubleTopRight     = '╗'
	BoxDoubleBottomLeft   = '╚'
	BoxDoubleBottomRight  = '╝'
)

// Box junction characters produced by border merging.
const (
	BoxTeeDown  = '┬'
	BoxTeeUp    = '┴'
	BoxTeeRight = '├'
	BoxTeeLeft  = '┤'
	BoxCross    = '┼'
)

// borderEdges maps border runes to the edges they connect.
// Bits: 1=top, 2=right, 4=bottom, 8=left.
var borderEdges = map[rune]uint8{
	BoxHorizontal:  0b1010,
	BoxVertical:    0b0101,
	BoxTopLeft:     0b0110,
	BoxTopRight:    0b1100,
	BoxBottomLeft:  0b0011,
	BoxBottomRight: 0b1001,
	BoxTeeDown:     0b1110,
	BoxTeeUp:       0b1011,
	BoxTeeRight:    0b0111,
	BoxTeeLeft:     0b1101,
	BoxCross:       0b1111,
	// Rounded corners connect the same edges as square ones.
	BoxRoundedTopLeft:     0b0110,
	BoxRoundedTopRight:    0b1100,
	BoxRoundedBottomLeft:  0b0011,
	BoxRoundedBottomRight: 0b1001,
}

var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// mergeBorders combines two border runes occupying the same cell into a
// junction character. Returns false if either rune is not a border rune.
func mergeBorders(existing, incoming rune) (rune, bool) {
	a, ok1 := borderEdges[existing]
	b, ok2 := borderEdges[incoming]
	if !ok1 || !ok2 {
		return incoming, false
	}
	if r, ok := edgesToBorder[a|b]; ok {
		return r, true
	}
	return incoming, false
}

// BorderStyle defines the characters used to draw a border.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxTopLeft,
		TopRight:    BoxTopRight,
		BottomLeft:  BoxBottomLeft,
		BottomRight: BoxBottomRight,
	}
	BorderRounded = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxRoundedTopLeft,
		TopRight:    BoxRoundedTopRight,
		BottomLeft:  BoxRoundedBottomLeft,
		BottomRight: BoxRoundedBottomRight,
	}
	BorderDouble = BorderStyle{
		Horizontal:  BoxDoubleHorizontal,
		Vertical:    BoxDoubleVertical,
		TopLeft:     BoxDoubleTopLeft,
		TopRight:    BoxDoubleTopRight,
		BottomLeft:  BoxDoubleBottomLeft,
		BottomRight: BoxDoubleBottomRight,
	}
)

// DrawBorder draws a border around the full extent of the region. Regions
// too small to hold a box are left untouched.
func (r *Region) DrawBorder(border BorderStyle, style Style) {
	w, h := r.width, r.height
	if w < 2 || h < 2 {
		return
	}

	r.Set(0, 0, NewCell(border.TopLeft, style))
	r.Set(w-1, 0, NewCell(border.TopRight, style))
	r.Set(0, h-1, NewCell(border.BottomLeft, style))
	r.Set(w-1, h-1, NewCell(border.BottomRight, style))

	for i := 1; i < w-1; i++ {
		r.Set(i, 0, NewCell(border.Horizontal, style))
		r.Set(i, h-1, NewCell(border.Horizontal, style))
	}
	for i := 1; i < h-1; i++ {
		r.Set(0, i, NewCell(border.Vertical, style))
		r.Set(w-1, i, NewCell(border.Vertical, style))
	}
}

// Border draws a box around a single child, consuming one cell on each
// edge. The child is laid out with constraints shrunk by the edge width;
// the border's size is the child's size plus the edges, clamped into its
// own bounds. With no room left it collapses to a degenerate size and
// renders nothing.
type Border struct {
	sizing
	borderStyle BorderStyle
	style       Style
}

// NewBorder returns a single-line border.
func NewBorder() *Border {
	return &Border{borderStyle: BorderSingle, style: DefaultStyle()}
}

// Kind implements Widget.
func (b *Border) Kind() string {
	return "border"
}

// Update implements Widget.
func (b *Border) Update(attrs Attributes) {
	b.sizing.update(attrs)
	b.borderStyle = borderStyleAttr(attrs)
}

// edge width consumed on each axis by the two border lines.
const borderEdgeCells = 2

// Layout implements Widget.
func (b *Border) Layout(ctx *LayoutContext) Size {
	b.sizing.apply(&ctx.Constraints)
	bounds := ctx.Constraints

	inner := ZeroSize
	if len(ctx.Children) > 0 {
		cc := bounds
		cc.ShrinkWidth(borderEdgeCells)
		cc.ShrinkHeight(borderEdgeCells)
		inner = ctx.Children[0].Layout(cc)
	}

	return bounds.ClampSize(Size{
		Width:  inner.Width + borderEdgeCells,
		Height: inner.Height + borderEdgeCells,
	})
}

// Position implements Widget: the child sits inside the edges.
func (b *Border) Position(pos Pos, children []*Node) {
	if len(children) > 0 {
		children[0].Position(pos.Add(1, 1))
	}
}

// Paint implements Widget.
func (b *Border) Paint(ctx *PaintContext, children []*Node) {
	ctx.DrawBorder(b.borderStyle, b.style)
	if len(children) > 0 {
		ctx.PaintChild(children[0])
	}
}

func borderFactory(attrs Attributes) (Widget, error) {
	if err := validateSizing("border", attrs); err != nil {
		return nil, err
	}
	if raw, present := attrs["style"]; present {
		if v, ok := raw.(string); !ok || borderStyles[v] == nil {
			return nil, badAttr("border", "style", raw)
		}
	}
	w := NewBorder()
	w.Update(attrs)
	return w, nil
}

var borderStyles = map[string]*BorderStyle{
	"single":  &BorderSingle,
	"rounded": &BorderRounded,
	"double":  &BorderDouble,
}

func borderStyleAttr(attrs Attributes) BorderStyle {
	if v, ok := attrs.Str("style"); ok {
		if bs := borderStyles[v]; bs != nil {
			return *bs
		}
	}
	return BorderSingle
}
