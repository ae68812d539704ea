package styles

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// themeMu protects themeRegistry and the current theme.
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorPalette holds all theme colors. Fields left empty fall back to the
// default theme's value when applied.
type ColorPalette struct {
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`

	Success string `toml:"success"`
	Warning string `toml:"warning"`
	Error   string `toml:"error"`

	TextPrimary   string `toml:"textPrimary"`
	TextSecondary string `toml:"textSecondary"`
	TextMuted     string `toml:"textMuted"`
	TextSubtle    string `toml:"textSubtle"`
	TextInverse   string `toml:"textInverse"`

	BgPrimary   string `toml:"bgPrimary"`
	BgSecondary string `toml:"bgSecondary"`
	BgSelected  string `toml:"bgSelected"`

	BorderNormal string `toml:"borderNormal"`
	BorderActive string `toml:"borderActive"`

	Link string `toml:"link"`
}

// Theme represents a complete theme configuration.
type Theme struct {
	Name        string       `toml:"name"`
	DisplayName string       `toml:"displayName"`
	Colors      ColorPalette `toml:"colors"`
}

// DefaultTheme is the built-in dark theme.
var DefaultTheme = Theme{
	Name:        "default",
	DisplayName: "Default Dark",
	Colors: ColorPalette{
		Primary: "#7C3AED",
		Accent:  "#F59E0B",

		Success: "#10B981",
		Warning: "#F59E0B",
		Error:   "#EF4444",

		TextPrimary:   "#F9FAFB",
		TextSecondary: "#9CA3AF",
		TextMuted:     "#6B7280",
		TextSubtle:    "#4B5563",
		TextInverse:   "#111827",

		BgPrimary:   "#111827",
		BgSecondary: "#1F2937",
		BgSelected:  "#374151",

		BorderNormal: "#374151",
		BorderActive: "#7C3AED",

		Link: "#60A5FA",
	},
}

// LightTheme is the built-in light theme.
var LightTheme = Theme{
	Name:        "light",
	DisplayName: "Default Light",
	Colors: ColorPalette{
		Primary: "#6D28D9",
		Accent:  "#B45309",

		Success: "#047857",
		Warning: "#B45309",
		Error:   "#B91C1C",

		TextPrimary:   "#111827",
		TextSecondary: "#4B5563",
		TextMuted:     "#6B7280",
		TextSubtle:    "#9CA3AF",
		TextInverse:   "#F9FAFB",

		BgPrimary:   "#FFFFFF",
		BgSecondary: "#F3F4F6",
		BgSelected:  "#E5E7EB",

		BorderNormal: "#D1D5DB",
		BorderActive: "#6D28D9",

		Link: "#1D4ED8",
	},
}

var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"light":   LightTheme,
}

var currentTheme = DefaultTheme

// IsValidHexColor reports whether hex is a #RRGGBB color code.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// GetTheme returns the named theme, falling back to the default.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if t, ok := themeRegistry[name]; ok {
		return t
	}
	return DefaultTheme
}

// CurrentTheme returns the theme currently applied.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTheme adds or replaces a theme in the registry.
func RegisterTheme(theme Theme) error {
	if theme.Name == "" {
		return fmt.Errorf("theme has no name")
	}
	themeMu.Lock()
	defer themeMu.Unlock()
	themeRegistry[theme.Name] = theme
	return nil
}

// ApplyTheme applies the named registered theme.
func ApplyTheme(name string) {
	applyColors(GetTheme(name))
}

// ApplyThemeColors applies an arbitrary theme without registering it.
func ApplyThemeColors(theme Theme) {
	applyColors(theme)
}

// LoadTheme parses a TOML theme file, registers it, and returns it.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	var theme Theme
	if err := toml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if theme.Name == "" {
		return Theme{}, fmt.Errorf("theme %s: missing name", path)
	}
	if err := validatePalette(theme.Colors); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	if err := RegisterTheme(theme); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// validatePalette rejects palettes containing malformed color codes.
// Empty fields are allowed; they fall back to the default theme.
func validatePalette(p ColorPalette) error {
	fields := map[string]string{
		"primary":       p.Primary,
		"accent":        p.Accent,
		"success":       p.Success,
		"warning":       p.Warning,
		"error":         p.Error,
		"textPrimary":   p.TextPrimary,
		"textSecondary": p.TextSecondary,
		"textMuted":     p.TextMuted,
		"textSubtle":    p.TextSubtle,
		"textInverse":   p.TextInverse,
		"bgPrimary":     p.BgPrimary,
		"bgSecondary":   p.BgSecondary,
		"bgSelected":    p.BgSelected,
		"borderNormal":  p.BorderNormal,
		"borderActive":  p.BorderActive,
		"link":          p.Link,
	}
	for name, value := range fields {
		if value != "" && !IsValidHexColor(value) {
			return fmt.Errorf("invalid color %s=%q", name, value)
		}
	}
	return nil
}

// applyColors updates the color variables and rebuilds styles.
func applyColors(theme Theme) {
	c := theme.Colors
	d := DefaultTheme.Colors

	Primary = pick(c.Primary, d.Primary)
	Accent = pick(c.Accent, d.Accent)

	Success = pick(c.Success, d.Success)
	Warning = pick(c.Warning, d.Warning)
	Error = pick(c.Error, d.Error)

	TextPrimary = pick(c.TextPrimary, d.TextPrimary)
	TextSecondary = pick(c.TextSecondary, d.TextSecondary)
	TextMuted = pick(c.TextMuted, d.TextMuted)
	TextSubtle = pick(c.TextSubtle, d.TextSubtle)
	TextInverse = pick(c.TextInverse, d.TextInverse)

	BgPrimary = pick(c.BgPrimary, d.BgPrimary)
	BgSecondary = pick(c.BgSecondary, d.BgSecondary)
	BgSelected = pick(c.BgSelected, d.BgSelected)

	BorderNormal = pick(c.BorderNormal, d.BorderNormal)
	BorderActive = pick(c.BorderActive, d.BorderActive)

	LinkColor = pick(c.Link, d.Link)

	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()

	rebuildStyles()
}

func pick(value, fallback string) lipgloss.Color {
	if value != "" {
		return lipgloss.Color(value)
	}
	return lipgloss.Color(fallback)
}
