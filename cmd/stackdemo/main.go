// Command stackdemo drives a stacked layout straight through a Screen:
// raw mode, diff flushes, live resize. Press any key to quit.
package main

import (
	"fmt"
	"os"

	"loom"
)

func template() *loom.Expr {
	return loom.El("zstack", nil,
		loom.El("expand", nil,
			loom.El("border", map[string]any{"style": "rounded"}),
		),
		loom.El("offset", map[string]any{"left": 2, "top": 1},
			loom.El("vstack", nil,
				loom.ElText("stackdemo"),
				loom.El("text", map[string]any{"text": loom.Binding("size")}),
				loom.El("hstack", nil,
					loom.El("border", nil, loom.ElText("one")),
					loom.El("border", nil, loom.ElText("two")),
					loom.El("border", nil, loom.ElText("three")),
				),
			),
		),
	)
}

func draw(node *loom.Node, state loom.MapResolver, screen *loom.Screen) {
	sz := screen.Size()
	state["size"] = fmt.Sprintf("%dx%d", sz.Width, sz.Height)
	node.Update(state)

	size := node.Layout(loom.Loose(sz.Width, sz.Height))
	node.Position(loom.Pos{})

	back := screen.Back()
	back.Clear()
	node.Paint(back.Region(0, 0, size.Width, size.Height))
	screen.Flush()
}

func main() {
	screen, err := loom.NewScreen(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	state := loom.MapResolver{}
	node, err := loom.Build(template(), loom.NewRegistry(), state)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := screen.EnterRawMode(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.ExitRawMode()

	quit := make(chan struct{})
	go func() {
		b := make([]byte, 1)
		os.Stdin.Read(b)
		close(quit)
	}()

	draw(node, state, screen)
	for {
		select {
		case <-screen.ResizeChan():
			draw(node, state, screen)
		case <-quit:
			return
		}
	}
}
