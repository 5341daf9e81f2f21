// Command frameview embeds a Frame in a bubbletea program. Pass -theme to
// load border and color settings from a TOML file, -debug for cycle
// timings on stderr. Press q to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"loom"
)

func template(theme loom.Theme) *loom.Expr {
	border := map[string]any{"style": theme.Border}
	return loom.El("vstack", nil,
		loom.El("border", border,
			loom.ElText("frameview"),
		),
		loom.El("hstack", nil,
			loom.El("border", border,
				loom.El("vstack", nil,
					loom.ElText("left"),
					loom.ElText("column"),
				),
			),
			loom.El("spacer", nil),
			loom.El("border", border,
				loom.ElText("right"),
			),
		),
	)
}

func main() {
	themePath := flag.String("theme", "", "path to a TOML theme file")
	debug := flag.Bool("debug", false, "log frame cycles to stderr")
	flag.Parse()

	if *debug {
		loom.SetLogger(loom.DebugLogger())
	}

	theme := loom.DefaultTheme()
	if *themePath != "" {
		var err error
		if theme, err = loom.LoadTheme(*themePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	frame := loom.NewFrame(template(theme))
	if _, err := tea.NewProgram(loom.NewModel(frame), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
