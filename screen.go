package loom

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Screen connects the compositing surface to a real terminal: double
// buffering, raw mode, resize tracking, and diff-based flushes that only
// rewrite cells that changed since the previous frame.
type Screen struct {
	front  *Buffer // what the terminal currently shows
	back   *Buffer // what the next frame drew
	writer io.Writer
	fd     int

	width  int
	height int

	rawState *term.State

	resizeChan chan Size
	sigChan    chan os.Signal

	lastStyle Style
	out       bytes.Buffer

	// guards the buffers across flush and resize
	mu sync.Mutex
}

// NewScreen creates a screen writing to w, or os.Stdout when w is nil.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	width, height, err := terminalSize(fd)
	if err != nil {
		width, height = 80, 24
	}

	return &Screen{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
		lastStyle:  DefaultStyle(),
	}, nil
}

func terminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Back returns the back buffer for drawing the next frame.
func (s *Screen) Back() *Buffer {
	return s.back
}

// ResizeChan receives the new size whenever the terminal is resized.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode switches the terminal to raw mode, enters the alternate
// screen, hides the cursor and starts resize tracking.
func (s *Screen) EnterRawMode() error {
	if s.rawState != nil {
		return nil
	}
	if !term.IsTerminal(s.fd) {
		return fmt.Errorf("fd %d is not a terminal", s.fd)
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.rawState = state

	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleResize()

	io.WriteString(s.writer, "\x1b[?1049h") // alternate screen
	io.WriteString(s.writer, "\x1b[2J")     // clear, so front matches reality
	io.WriteString(s.writer, "\x1b[H")
	io.WriteString(s.writer, "\x1b[?25l") // hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if s.rawState == nil {
		return nil
	}

	io.WriteString(s.writer, "\x1b[?25h")
	io.WriteString(s.writer, "\x1b[?1049l")

	signal.Stop(s.sigChan)

	if err := term.Restore(s.fd, s.rawState); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	s.rawState = nil
	return nil
}

func (s *Screen) handleResize() {
	for range s.sigChan {
		width, height, err := terminalSize(s.fd)
		if err != nil {
			continue
		}
		if width == s.width && height == s.height {
			continue
		}
		s.mu.Lock()
		s.width = width
		s.height = height
		s.front.Resize(width, height)
		s.back.Resize(width, height)
		// Both buffers go blank so the next flush repaints everything.
		s.front.Clear()
		s.back.Clear()
		io.WriteString(s.writer, "\x1b[2J")
		s.mu.Unlock()

		select {
		case s.resizeChan <- Size{Width: width, Height: height}:
		default:
		}
	}
}

// Flush writes the back buffer to the terminal, emitting only cells that
// differ from the front buffer, then promotes them to the front.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.Reset()
	cursorX, cursorY := -1, -1
	changed := 0

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.back.Get(x, y)
			if cell == s.front.Get(x, y) {
				continue
			}
			changed++

			if cursorX != x || cursorY != y {
				fmt.Fprintf(&s.out, "\x1b[%d;%dH", y+1, x+1)
			}
			s.writeCell(cell)
			s.front.Set(x, y, cell)

			// The cursor advances by the display width of the rune.
			rw := runewidth.RuneWidth(cell.Rune)
			if rw == 0 {
				rw = 1
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if changed > 0 {
		s.out.WriteString("\x1b[0m")
		s.lastStyle = DefaultStyle()
		s.writer.Write(s.out.Bytes())
	}
}

// FlushFull redraws the whole screen without diffing.
func (s *Screen) FlushFull() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.Reset()
	s.out.WriteString("\x1b[2J\x1b[H")

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.back.Get(x, y)
			s.writeCell(cell)
			s.front.Set(x, y, cell)
		}
		if y < s.height-1 {
			s.out.WriteString("\r\n")
		}
	}

	s.out.WriteString("\x1b[0m")
	s.lastStyle = DefaultStyle()
	s.writer.Write(s.out.Bytes())
}

// writeCell emits a cell, only re-emitting SGR codes when the style
// changes between consecutive cells.
func (s *Screen) writeCell(cell Cell) {
	if cell.Style != s.lastStyle {
		s.writeStyle(cell.Style)
		s.lastStyle = cell.Style
	}
	s.out.WriteRune(cell.Rune)
}

func (s *Screen) writeStyle(style Style) {
	s.out.WriteString("\x1b[0")
	if style.Attr.Has(AttrBold) {
		s.out.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		s.out.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		s.out.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		s.out.WriteString(";4")
	}
	if style.Attr.Has(AttrInverse) {
		s.out.WriteString(";7")
	}
	s.writeColor(style.FG, true)
	s.writeColor(style.BG, false)
	s.out.WriteByte('m')
}

func (s *Screen) writeColor(c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			s.out.WriteString(";39")
		} else {
			s.out.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			fmt.Fprintf(&s.out, ";%d", base+60+int(c.Index-8))
		} else {
			fmt.Fprintf(&s.out, ";%d", base+int(c.Index))
		}
	case Color256:
		if fg {
			fmt.Fprintf(&s.out, ";38;5;%d", c.Index)
		} else {
			fmt.Fprintf(&s.out, ";48;5;%d", c.Index)
		}
	case ColorRGB:
		if fg {
			fmt.Fprintf(&s.out, ";38;2;%d;%d;%d", c.R, c.G, c.B)
		} else {
			fmt.Fprintf(&s.out, ";48;2;%d;%d;%d", c.R, c.G, c.B)
		}
	}
}
