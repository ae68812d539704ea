package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#FFFFFF", true},
		{"#7c3aed", true},
		{"#FFF", false},
		{"FFFFFF", false},
		{"#GGGGGG", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidHexColor(tt.hex); got != tt.want {
			t.Errorf("IsValidHexColor(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	path := writeTheme(t, `
name = "ocean"
displayName = "Ocean"

[colors]
primary = "#0EA5E9"
accent = "#22D3EE"
`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Name != "ocean" || theme.Colors.Primary != "#0EA5E9" {
		t.Errorf("theme = %+v", theme)
	}
	found := false
	for _, name := range ListThemes() {
		if name == "ocean" {
			found = true
		}
	}
	if !found {
		t.Error("loaded theme should be registered")
	}
}

func TestLoadTheme_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[colors]\nprimary = \"#000000\"\n"},
		{"bad color", "name = \"x\"\n[colors]\nprimary = \"blue\"\n"},
		{"bad toml", "name = [[[\n"},
	}
	for _, tt := range tests {
		path := writeTheme(t, tt.content)
		if _, err := LoadTheme(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestApplyTheme_FallbackColors(t *testing.T) {
	defer ApplyThemeColors(DefaultTheme)

	ApplyThemeColors(Theme{
		Name:   "partial",
		Colors: ColorPalette{Primary: "#123456"},
	})

	if Primary != lipgloss.Color("#123456") {
		t.Errorf("Primary = %v", Primary)
	}
	// Unset fields fall back to the default palette.
	if Accent != lipgloss.Color(DefaultTheme.Colors.Accent) {
		t.Errorf("Accent = %v, want default", Accent)
	}
	if CurrentTheme().Name != "partial" {
		t.Errorf("CurrentTheme() = %q", CurrentTheme().Name)
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("no-such-theme"); got.Name != "default" {
		t.Errorf("GetTheme fallback = %q", got.Name)
	}
}

func TestRegisterTheme(t *testing.T) {
	if err := RegisterTheme(Theme{}); err == nil {
		t.Error("nameless theme should be rejected")
	}
	if err := RegisterTheme(Theme{Name: "custom"}); err != nil {
		t.Errorf("RegisterTheme: %v", err)
	}
	if GetTheme("custom").Name != "custom" {
		t.Error("registered theme not retrievable")
	}
}
