package loom

// Expr is one node of a declarative widget template: a tag name, a map of
// attribute expressions, and ordered children. Attribute values are either
// literals or Bindings; bindings are re-resolved through the Resolver every
// update cycle, literals pass through untouched.
type Expr struct {
	Tag      string
	Attrs    map[string]any
	Children []*Expr
}

// El builds an expression node. Attrs may be nil.
func El(tag string, attrs map[string]any, children ...*Expr) *Expr {
	return &Expr{Tag: tag, Attrs: attrs, Children: children}
}

// ElText builds a text expression with literal content.
func ElText(s string) *Expr {
	return El("text", map[string]any{"text": s})
}

// Build constructs the widget node tree from an expression tree, depth
// first and in child order. Attributes are resolved once for the initial
// update; the raw expressions stay attached to each node so subsequent
// cycles can re-resolve them. Construction stops at the first factory
// error.
func Build(e *Expr, reg *Registry, res Resolver) (*Node, error) {
	attrs := resolveAttrs(e.Attrs, res)
	w, err := reg.New(e.Tag, attrs)
	if err != nil {
		return nil, err
	}

	n := &Node{widget: w, rawAttrs: e.Attrs}
	for _, ce := range e.Children {
		child, err := Build(ce, reg, res)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}
