package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color variables updated by ApplyTheme. Components reference these (or the
// prebuilt styles below) rather than raw hex values so a theme switch
// propagates everywhere.
var (
	Primary lipgloss.Color
	Accent  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextSubtle    lipgloss.Color
	TextInverse   lipgloss.Color

	BgPrimary   lipgloss.Color
	BgSecondary lipgloss.Color
	BgSelected  lipgloss.Color

	BorderNormal lipgloss.Color
	BorderActive lipgloss.Color

	LinkColor lipgloss.Color
)

// Prebuilt styles, rebuilt whenever the theme changes.
var (
	// Row styles
	RowNormal   lipgloss.Style
	RowFocused  lipgloss.Style
	RowSelected lipgloss.Style

	// Selection checkbox
	Checkbox         lipgloss.Style
	CheckboxChecked  lipgloss.Style
	CheckboxDisabled lipgloss.Style

	// Row anchor (navigation target)
	Anchor        lipgloss.Style
	AnchorFocused lipgloss.Style

	// Shortcut action buttons and the disclosure toggle
	ActionButton   lipgloss.Style
	ActionDisabled lipgloss.Style
	Disclosure     lipgloss.Style
	DisclosureOpen lipgloss.Style
	ActionsMenu    lipgloss.Style

	// Frame chrome
	SaveBar        lipgloss.Style
	SaveBarMessage lipgloss.Style
	SaveButton     lipgloss.Style
	DiscardButton  lipgloss.Style
	LoadingBar     lipgloss.Style

	// General text
	Muted  lipgloss.Style
	Subtle lipgloss.Style
)

func init() {
	applyColors(DefaultTheme)
}

// rebuildStyles recreates all lipgloss styles with current colors.
func rebuildStyles() {
	RowNormal = lipgloss.NewStyle().
		Foreground(TextPrimary)

	RowFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSecondary).
		Bold(true)

	RowSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSelected)

	Checkbox = lipgloss.NewStyle().
		Foreground(TextMuted)

	CheckboxChecked = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	CheckboxDisabled = lipgloss.NewStyle().
		Foreground(TextSubtle)

	Anchor = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)

	AnchorFocused = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true).
		Bold(true)

	ActionButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgSecondary).
		Padding(0, 1)

	ActionDisabled = lipgloss.NewStyle().
		Foreground(TextSubtle).
		Padding(0, 1)

	Disclosure = lipgloss.NewStyle().
		Foreground(TextMuted)

	DisclosureOpen = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	ActionsMenu = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	SaveBar = lipgloss.NewStyle().
		Background(BgSecondary).
		Padding(0, 1)

	SaveBarMessage = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSecondary).
		Bold(true)

	SaveButton = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Primary).
		Bold(true).
		Padding(0, 1)

	DiscardButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgSecondary).
		Padding(0, 1)

	LoadingBar = lipgloss.NewStyle().
		Foreground(Accent)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Subtle = lipgloss.NewStyle().
		Foreground(TextSubtle)
}
