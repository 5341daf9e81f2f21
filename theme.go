package loom

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme is appearance configuration for applications built on the engine:
// which border style bordered widgets default to, and the base colors. It
// deliberately stays out of the layout core - themes change how cells look,
// never where they go.
type Theme struct {
	Border     string `toml:"border"`     // "single", "rounded" or "double"
	Foreground string `toml:"foreground"` // "#RRGGBB", or empty for terminal default
	Background string `toml:"background"`
}

// DefaultTheme returns single-line borders in the terminal's own colors.
func DefaultTheme() Theme {
	return Theme{Border: "single"}
}

// LoadTheme reads a theme from a TOML file, filling gaps with defaults.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return DefaultTheme(), fmt.Errorf("load theme %s: %w", path, err)
	}
	if borderStyles[t.Border] == nil {
		return DefaultTheme(), fmt.Errorf("load theme %s: unknown border style %q", path, t.Border)
	}
	return t, nil
}

// BorderStyle returns the theme's border character set.
func (t Theme) BorderStyle() BorderStyle {
	if bs := borderStyles[t.Border]; bs != nil {
		return *bs
	}
	return BorderSingle
}

// Style returns the theme's base cell style.
func (t Theme) Style() Style {
	s := DefaultStyle()
	if c, ok := parseHexColor(t.Foreground); ok {
		s.FG = c
	}
	if c, ok := parseHexColor(t.Background); ok {
		s.BG = c
	}
	return s
}

// parseHexColor parses "#RRGGBB" into an RGB color.
func parseHexColor(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return Color{}, false
		}
		rgb[i] = hi<<4 | lo
	}
	return RGB(rgb[0], rgb[1], rgb[2]), true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
