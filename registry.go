package loom

import (
	"errors"
	"fmt"
)

// Construction errors. Widget construction is the only recoverable error
// surface in the engine: a factory rejects configuration it cannot coerce
// into a widget, and the error travels up through the tree builder. Once a
// tree exists, layout, position and paint never fail.
var (
	ErrUnknownTag   = errors.New("unknown widget tag")
	ErrBadAttribute = errors.New("bad attribute value")
)

func badAttr(tag, name string, raw any) error {
	return fmt.Errorf("%s: attribute %q = %v: %w", tag, name, raw, ErrBadAttribute)
}

// FactoryFunc constructs a widget from a map of already-resolved attribute
// values.
type FactoryFunc func(attrs Attributes) (Widget, error)

// Registry maps widget tag names to factories. The built-in containers and
// leaves are pre-registered; applications extend the set with Register.
type Registry struct {
	factories map[string]FactoryFunc
}

// NewRegistry returns a registry preloaded with the built-in widgets.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]FactoryFunc)}
	r.Register("hstack", hstackFactory)
	r.Register("vstack", vstackFactory)
	r.Register("zstack", zstackFactory)
	r.Register("border", borderFactory)
	r.Register("text", textFactory)
	r.Register("expand", expandFactory)
	r.Register("spacer", spacerFactory)
	r.Register("offset", offsetFactory)
	return r
}

// Register adds or replaces the factory for a tag.
func (r *Registry) Register(tag string, f FactoryFunc) {
	r.factories[tag] = f
}

// New constructs the widget registered for the tag.
func (r *Registry) New(tag string, attrs Attributes) (Widget, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tag, ErrUnknownTag)
	}
	w, err := f(attrs)
	if err != nil {
		return nil, err
	}
	return w, nil
}
