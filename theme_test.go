package loom

import (
	"os"
	"path/filepath"
	"testing"
)

func writeThemeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	t.Run("FullFile", func(t *testing.T) {
		path := writeThemeFile(t, `
border = "double"
foreground = "#ff8800"
`)
		theme, err := LoadTheme(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if theme.Border != "double" {
			t.Errorf("border = %q", theme.Border)
		}
		want := RGB(0xff, 0x88, 0x00)
		if got := theme.Style().FG; got != want {
			t.Errorf("foreground = %+v, want %+v", got, want)
		}
	})

	t.Run("GapsFilledWithDefaults", func(t *testing.T) {
		path := writeThemeFile(t, `foreground = "#102030"`)
		theme, err := LoadTheme(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if theme.Border != "single" {
			t.Errorf("border = %q, want default single", theme.Border)
		}
	})

	t.Run("UnknownBorderStyle", func(t *testing.T) {
		path := writeThemeFile(t, `border = "dotted"`)
		if _, err := LoadTheme(path); err == nil {
			t.Error("expected error for unknown border style")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		theme, err := LoadTheme(filepath.Join(t.TempDir(), "nope.toml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if theme != DefaultTheme() {
			t.Error("failed load should fall back to the default theme")
		}
	})
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#000000", RGB(0, 0, 0), true},
		{"#FFffFF", RGB(255, 255, 255), true},
		{"#1a2B3c", RGB(0x1a, 0x2b, 0x3c), true},
		{"", Color{}, false},
		{"112233", Color{}, false},
		{"#12345", Color{}, false},
		{"#12345g", Color{}, false},
	}
	for _, tc := range cases {
		got, ok := parseHexColor(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("parseHexColor(%q) = %+v, %v", tc.in, got, ok)
		}
	}
}
