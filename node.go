package loom

// Node ties a widget instance to its ordered child nodes and carries the
// transient per-cycle geometry. The child list is owned exclusively by its
// node and its order is semantically meaningful: it is the layout order,
// the stacking order, and the paint order, preserved from tree construction
// through all three passes.
//
// Layout, position and paint results live only for the duration of one
// update cycle; nothing is cached across cycles.
type Node struct {
	widget   Widget
	children []*Node
	rawAttrs map[string]any // unresolved attribute expressions, re-resolved each cycle

	size Size
	pos  Pos
}

// NewNode wraps a widget and its children in a node.
func NewNode(w Widget, children ...*Node) *Node {
	return &Node{widget: w, children: children}
}

// Widget returns the wrapped widget.
func (n *Node) Widget() Widget {
	return n.widget
}

// Kind returns the wrapped widget's tag name.
func (n *Node) Kind() string {
	return n.widget.Kind()
}

// Children returns the ordered child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Append adds children to the end of the child list, on top in paint order.
func (n *Node) Append(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

// Size returns the size computed by the most recent layout pass.
func (n *Node) Size() Size {
	return n.size
}

// Pos returns the coordinates assigned by the most recent position pass.
func (n *Node) Pos() Pos {
	return n.pos
}

// Update runs the update pass: attributes are re-resolved through the
// resolver and handed to each widget, depth-first. No geometry is touched.
func (n *Node) Update(r Resolver) {
	n.widget.Update(resolveAttrs(n.rawAttrs, r))
	for _, child := range n.children {
		child.Update(r)
	}
}

// Layout runs the layout pass: constraints propagate top-down, sizes come
// back bottom-up. The constraints are normalized before the widget sees
// them, so layout is total over any input.
func (n *Node) Layout(c Constraints) Size {
	c.normalize()
	ctx := LayoutContext{Constraints: c, Children: n.children}
	n.size = n.widget.Layout(&ctx)
	return n.size
}

// Position runs the position pass, assigning this node's absolute origin
// and letting the widget place its children below it.
func (n *Node) Position(p Pos) {
	n.pos = p
	n.widget.Position(p, n.children)
}

// Paint runs the paint pass. The region is the scoped write capability for
// exactly this node's rectangle; it is handed to the widget for the
// duration of the call and reverts to the caller afterwards.
func (n *Node) Paint(r *Region) {
	n.widget.Paint(&PaintContext{Region: r, Pos: n.pos}, n.children)
}

// walk visits the node and all descendants depth-first, in child order.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.walk(fn)
	}
}
