package loom

// OptInt is an optional non-negative integer attribute value. Unset is
// distinct from zero: an unset attribute contributes nothing to the
// constraints on its axis.
type OptInt struct {
	Value int
	Set   bool
}

// SomeInt returns a set OptInt.
func SomeInt(n int) OptInt {
	return OptInt{Value: n, Set: true}
}

// Attributes holds a node's resolved attribute values for one update cycle.
// Values are produced by the resolver before the layout pass begins; the
// engine never resolves anything itself.
type Attributes map[string]any

// Int returns the named attribute as an integer, if present and integral.
func (a Attributes) Int(name string) (int, bool) {
	switch v := a[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case float64:
		// Resolvers backed by generic decoders hand back float64.
		return int(v), true
	}
	return 0, false
}

// OptInt returns the named attribute as an optional integer.
func (a Attributes) OptInt(name string) OptInt {
	if v, ok := a.Int(name); ok {
		return SomeInt(v)
	}
	return OptInt{}
}

// Str returns the named attribute as a string, if present.
func (a Attributes) Str(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Binding marks an attribute expression whose value is looked up through the
// resolver on every update cycle, supporting live-updating attributes.
type Binding string

// Resolver supplies values for attribute bindings. It is re-invoked once per
// node per cycle. Implementations must never return a negative size value;
// widget factories reject them at construction time regardless.
type Resolver interface {
	Resolve(name string) (any, bool)
}

// MapResolver resolves bindings from a plain map. Useful for tests and for
// applications whose state lives in a single map.
type MapResolver map[string]any

// Resolve implements Resolver.
func (m MapResolver) Resolve(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// resolveAttrs produces the cycle's resolved attribute set from raw
// expression attributes. Literals pass through; bindings are looked up, and
// unresolvable bindings are left unset.
func resolveAttrs(raw map[string]any, r Resolver) Attributes {
	if len(raw) == 0 {
		return nil
	}
	attrs := make(Attributes, len(raw))
	for name, v := range raw {
		if b, ok := v.(Binding); ok {
			if r == nil {
				continue
			}
			resolved, ok := r.Resolve(string(b))
			if !ok {
				continue
			}
			attrs[name] = resolved
			continue
		}
		attrs[name] = v
	}
	return attrs
}
