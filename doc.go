// Package loom is a constraint-based layout and compositing engine for
// trees of terminal UI widgets.
//
// Every update cycle runs three passes over the widget tree. The layout
// pass propagates size constraints top-down and computes sizes bottom-up;
// the position pass assigns absolute coordinates top-down from the sizes
// just computed; the paint pass draws each widget onto the shared surface
// in insertion order, so later siblings composite over earlier ones.
//
// Trees come from declarative templates:
//
//	tpl := loom.El("hstack", nil,
//		loom.El("border", nil, loom.ElText("left")),
//		loom.El("border", nil, loom.ElText("right")),
//	)
//	frame := loom.NewFrame(tpl)
//	buf, err := frame.Tick(80, 24)
//
// Attribute values may be literals or Bindings resolved through a Resolver
// on every cycle, so sizes can track application state. The resulting
// Buffer is flushed to a terminal with Screen, or embedded in a
// bubbletea program with Model.
//
// Tree depth is bounded only by the call stack; the passes recurse and a
// pathologically deep tree will exhaust it before the engine notices.
package loom
