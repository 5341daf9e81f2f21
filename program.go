package loom

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model adapts a Frame to bubbletea: each window size message becomes the
// constraint bounds for the next cycle, and View runs a full cycle and
// renders the resulting surface through lipgloss. Use this to embed an
// engine-driven view inside a bubbletea application instead of driving a
// raw Screen.
type Model struct {
	frame  *Frame
	width  int
	height int
}

// NewModel wraps a frame for use as a bubbletea model.
func NewModel(f *Frame) Model {
	return Model{frame: f}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	buf, err := m.frame.Tick(m.width, m.height)
	if err != nil {
		return err.Error()
	}
	return renderLipgloss(buf)
}

// renderLipgloss turns the surface into a styled string, one lipgloss
// render per run of identically styled cells.
func renderLipgloss(buf *Buffer) string {
	var out strings.Builder
	for y := 0; y < buf.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		runStyle := DefaultStyle()
		for x := 0; x < buf.Width(); x++ {
			cell := buf.Get(x, y)
			if cell.Rune == 0 {
				cell.Rune = ' '
			}
			if cell.Style != runStyle && run.Len() > 0 {
				out.WriteString(lipglossStyle(runStyle).Render(run.String()))
				run.Reset()
			}
			runStyle = cell.Style
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			out.WriteString(lipglossStyle(runStyle).Render(run.String()))
		}
	}
	return out.String()
}

// lipglossStyle converts a cell style to lipgloss.
func lipglossStyle(s Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := lipglossColor(s.FG); ok {
		st = st.Foreground(c)
	}
	if c, ok := lipglossColor(s.BG); ok {
		st = st.Background(c)
	}
	if s.Attr.Has(AttrBold) {
		st = st.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		st = st.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attr.Has(AttrInverse) {
		st = st.Reverse(true)
	}
	return st
}

func lipglossColor(c Color) (lipgloss.TerminalColor, bool) {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	}
	return lipgloss.NoColor{}, false
}
