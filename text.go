package loom

import "unicode/utf8"

// Text is a single-line leaf widget. Its natural width is the rune count
// of its content; it clips to whatever width the constraints allow and
// reports a degenerate size when it gets no room at all.
type Text struct {
	content string
	style   Style
}

// NewText returns a text widget with the given content.
func NewText(content string) *Text {
	return &Text{content: content, style: DefaultStyle()}
}

// Kind implements Widget.
func (t *Text) Kind() string {
	return "text"
}

// Content returns the current text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text content.
func (t *Text) SetContent(s string) {
	t.content = s
}

// SetStyle replaces the text style.
func (t *Text) SetStyle(s Style) {
	t.style = s
}

// Update implements Widget: the content rides in the "text" attribute so
// bound text re-resolves each cycle like any other attribute.
func (t *Text) Update(attrs Attributes) {
	if v, ok := attrs.Str("text"); ok {
		t.content = v
	}
}

// Layout implements Widget.
func (t *Text) Layout(ctx *LayoutContext) Size {
	c := ctx.Constraints
	w := c.ClampWidth(utf8.RuneCountInString(t.content))
	if w == 0 {
		return Size{Width: 0, Height: c.ClampHeight(0)}
	}
	return Size{Width: w, Height: c.ClampHeight(1)}
}

// Position implements Widget: a leaf, nothing to place.
func (t *Text) Position(pos Pos, children []*Node) {}

// Paint implements Widget.
func (t *Text) Paint(ctx *PaintContext, children []*Node) {
	ctx.WriteString(0, 0, t.content, t.style)
}

func textFactory(attrs Attributes) (Widget, error) {
	if raw, present := attrs["text"]; present {
		if _, ok := raw.(string); !ok {
			return nil, badAttr("text", "text", raw)
		}
	}
	w := NewText("")
	w.Update(attrs)
	return w, nil
}
