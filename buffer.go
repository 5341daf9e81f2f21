package loom

// Buffer is a 2D grid of cells: the compositing surface widgets paint onto.
// Widgets never address it directly; they write through a Region scoped to
// their own rectangle.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions, filled with empty
// cells.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// InBounds returns true if the coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates, or an empty cell when out
// of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set writes the cell at the given coordinates. Out-of-bounds writes are
// dropped. Adjacent border runes are merged into junction characters.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)
	if merged, ok := mergeBorders(b.cells[idx].Rune, c.Rune); ok {
		c.Rune = merged
	}
	b.cells[idx] = c
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear resets the buffer to empty cells.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// Region returns a scoped view of the given rectangle, clipped to the
// buffer bounds.
func (b *Buffer) Region(x, y, width, height int) *Region {
	r := &Region{
		buf:     b,
		originX: x,
		originY: y,
		width:   max0(width),
		height:  max0(height),
	}
	r.clip = intersect(
		clipRect{0, 0, b.width, b.height},
		clipRect{x, y, r.width, r.height},
	)
	return r
}

// Whole returns a region covering the entire buffer.
func (b *Buffer) Whole() *Region {
	return b.Region(0, 0, b.width, b.height)
}

// Line returns the content of a single row, with trailing spaces trimmed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var line []byte
	lastInk := 0
	for x := 0; x < b.width; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		line = append(line, string(r)...)
		if r != ' ' {
			lastInk = len(line)
		}
	}
	return string(line[:lastInk])
}

// String returns the buffer contents row by row, for tests and debugging.
// Trailing spaces are preserved.
func (b *Buffer) String() string {
	var out []byte
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			out = append(out, string(r)...)
		}
		if y < b.height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Resize changes the buffer dimensions, preserving content where it fits.
func (b *Buffer) Resize(width, height int) {
	width, height = max0(width), max0(height)
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}

	keepW := min(b.width, width)
	keepH := min(b.height, height)
	for y := 0; y < keepH; y++ {
		for x := 0; x < keepW; x++ {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = cells
	b.width = width
	b.height = height
}

// clipRect is a rectangle in buffer coordinates.
type clipRect struct {
	x, y, w, h int
}

func (r clipRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func intersect(a, b clipRect) clipRect {
	x1 := max(a.x, b.x)
	y1 := max(a.y, b.y)
	x2 := min(a.x+a.w, b.x+b.w)
	y2 := min(a.y+a.h, b.y+b.h)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return clipRect{x1, y1, x2 - x1, y2 - y1}
}

// Region is a scoped, write-capable view of a rectangle of the surface.
// Coordinates are relative to the region's own top-left corner, and writes
// are clipped both to the region's extent and to every ancestor region's
// extent, so a widget can never paint outside the rectangle it was handed.
//
// Exactly one widget at a time holds a given region during the paint pass;
// ownership reverts to the parent when the paint call returns.
type Region struct {
	buf              *Buffer
	originX, originY int // buffer coordinates of local (0,0)
	width, height    int
	clip             clipRect
}

// Width returns the region width.
func (r *Region) Width() int {
	return r.width
}

// Height returns the region height.
func (r *Region) Height() int {
	return r.height
}

// Size returns the region dimensions.
func (r *Region) Size() Size {
	return Size{Width: r.width, Height: r.height}
}

// Sub derives a child region at the given offset within this region. The
// child may extend past this region's edges (including negative offsets for
// off-screen math); everything outside the shared area is clipped.
func (r *Region) Sub(x, y, width, height int) *Region {
	sub := &Region{
		buf:     r.buf,
		originX: r.originX + x,
		originY: r.originY + y,
		width:   max0(width),
		height:  max0(height),
	}
	sub.clip = intersect(r.clip, clipRect{sub.originX, sub.originY, sub.width, sub.height})
	return sub
}

// Get returns the cell at the given region-relative coordinates.
func (r *Region) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return EmptyCell()
	}
	return r.buf.Get(r.originX+x, r.originY+y)
}

// Set writes the cell at the given region-relative coordinates. Writes
// outside the region or its clip rectangle are dropped.
func (r *Region) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	bx, by := r.originX+x, r.originY+y
	if !r.clip.contains(bx, by) {
		return
	}
	r.buf.Set(bx, by, c)
}

// Fill fills the region with the given cell.
func (r *Region) Fill(c Cell) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.Set(x, y, c)
		}
	}
}

// WriteString writes a string starting at the given region-relative
// coordinates, clipped to the region. Returns the number of cells written.
func (r *Region) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.Set(x, y, NewCell(ch, style))
		x++
		written++
	}
	return written
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
