package loom

import (
	"strings"
	"testing"
)

// testRender builds the expression tree, runs all three passes against a
// window of the given dimensions, and returns the painted surface.
func testRender(t *testing.T, expr *Expr, width, height int) (*Buffer, *Node) {
	t.Helper()
	node, err := Build(expr, NewRegistry(), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	size := node.Layout(Loose(width, height))
	node.Position(Pos{})
	buf := NewBuffer(width, height)
	node.Paint(buf.Region(0, 0, size.Width, size.Height))
	return buf, node
}

// trimmed returns the buffer contents with trailing blank columns and rows
// removed, for comparison against golden strings.
func trimmed(buf *Buffer) string {
	var lines []string
	for y := 0; y < buf.Height(); y++ {
		lines = append(lines, buf.Line(y))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// borderedDigits builds count children of the form border(text(i)).
func borderedDigits(count int) []*Expr {
	children := make([]*Expr, count)
	for i := range children {
		children[i] = El("border", nil, ElText(string(rune('0'+i%10))))
	}
	return children
}
