package loom

import "time"

// Frame drives one widget template through repeated update cycles. Every
// Tick rebuilds nothing it can reuse and caches nothing it can't: the node
// tree persists between cycles, but all geometry is recomputed from
// scratch each time. A cycle is strictly sequential - update, layout,
// position, paint - and completes synchronously.
type Frame struct {
	Registry *Registry
	Resolver Resolver

	template *Expr
	node     *Node
}

// NewFrame returns a frame for the given template, using the built-in
// widget registry and no resolver. Both fields may be swapped before the
// first Tick.
func NewFrame(template *Expr) *Frame {
	return &Frame{
		Registry: NewRegistry(),
		template: template,
	}
}

// Root returns the built node tree, or nil before the first Tick.
func (f *Frame) Root() *Node {
	return f.node
}

// Invalidate drops the built tree; the next Tick reconstructs it from the
// template. Use this when the template itself changed, not when bound
// values changed - bindings re-resolve every cycle regardless.
func (f *Frame) Invalidate() {
	f.node = nil
}

// Tick runs one full cycle against a fresh surface of the given dimensions
// and returns it. The only error path is widget construction when the tree
// needs (re)building; the three passes themselves cannot fail.
func (f *Frame) Tick(width, height int) (*Buffer, error) {
	start := time.Now()

	if f.node == nil {
		node, err := Build(f.template, f.Registry, f.Resolver)
		if err != nil {
			return nil, err
		}
		f.node = node
	} else {
		f.node.Update(f.Resolver)
	}

	size := f.node.Layout(Loose(width, height))
	f.node.Position(Pos{})

	buf := NewBuffer(width, height)
	f.node.Paint(buf.Region(0, 0, size.Width, size.Height))

	logger.Debug("frame cycle",
		"width", size.Width,
		"height", size.Height,
		"elapsed", time.Since(start))
	return buf, nil
}
