package row

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/rowkit/internal/textutil"
	"github.com/wilbur182/rowkit/mouse"
	"github.com/wilbur182/rowkit/styles"
)

const (
	checkboxEmpty   = "[ ]"
	checkboxChecked = "[x]"
	disclosureGlyph = "⋯"
	actionSeparator = "│"
)

// Layout reports where the row's interactive sub-targets landed in the
// rendered output, in cells relative to the row origin. The containing
// list offsets these by the row's screen position when registering hit
// regions. Zero-width rects mean the target was not rendered.
type Layout struct {
	Checkbox   mouse.Rect
	Anchor     mouse.Rect
	Disclosure mouse.Rect
	Actions    []mouse.Rect
	MenuItems  []mouse.Rect
	Height     int
}

// View renders the row to a single string.
func (m *Model) View(width int) string {
	s, _ := m.Render(width)
	return s
}

// Render renders the row and returns the hit layout alongside.
func (m *Model) Render(width int) (string, Layout) {
	if width < 8 {
		width = 8
	}

	var (
		sb     strings.Builder
		layout Layout
		x      int
	)
	layout.Height = 1

	if m.ctx.Selectable {
		box := checkboxEmpty
		style := styles.Checkbox
		if m.IsSelected() {
			box = checkboxChecked
			style = styles.CheckboxChecked
		}
		if m.CheckboxDisabled() {
			style = styles.CheckboxDisabled
		}
		sb.WriteString(style.Render(box))
		sb.WriteString(" ")
		boxW := textutil.Width(checkboxEmpty)
		layout.Checkbox = mouse.Rect{X: x, Y: 0, W: boxW, H: 1}
		x += boxW + 1
	}

	if m.row.Media != "" {
		media := textutil.Truncate(m.row.Media, 2)
		sb.WriteString(styles.Muted.Render(media))
		sb.WriteString(" ")
		x += textutil.Width(media) + 1
	}

	// Right-aligned actions area is measured first so the title knows
	// how much room it has.
	actionsText, actionRects, disclosureRect := m.renderActions()
	actionsWidth := textutil.Width(actionsText)

	avail := width - x - actionsWidth
	if actionsWidth > 0 {
		avail-- // one cell of breathing room before the actions
	}
	title := textutil.Truncate(m.row.Title, avail)
	titleWidth := textutil.Width(title)

	sb.WriteString(m.titleStyle().Render(title))
	if m.row.URL != "" {
		layout.Anchor = mouse.Rect{X: x, Y: 0, W: titleWidth, H: 1}
	}
	x += titleWidth

	if actionsWidth > 0 {
		gap := width - x - actionsWidth
		if gap > 0 {
			sb.WriteString(strings.Repeat(" ", gap))
			x += gap
		}
		sb.WriteString(actionsText)
		for _, r := range actionRects {
			layout.Actions = append(layout.Actions, mouse.Rect{X: x + r.X, Y: 0, W: r.W, H: 1})
		}
		if disclosureRect.W > 0 {
			layout.Disclosure = mouse.Rect{X: x + disclosureRect.X, Y: 0, W: disclosureRect.W, H: 1}
		}
	}

	if m.menuOffered() && m.actionsVisible {
		for _, a := range m.row.ShortcutActions {
			sb.WriteString("\n")
			label := textutil.Truncate(a.Label, width-4)
			style := styles.ActionButton
			if a.Disabled {
				style = styles.ActionDisabled
			}
			sb.WriteString("  ")
			sb.WriteString(style.Render(label))
			layout.MenuItems = append(layout.MenuItems, mouse.Rect{
				X: 2, Y: layout.Height, W: textutil.Width(label) + 2, H: 1,
			})
			layout.Height++
		}
	}

	return sb.String(), layout
}

// renderActions renders the right-aligned actions area and returns it
// with rects relative to the area's own origin. Nothing is produced
// while the list is loading or when the row has no shortcut actions.
func (m *Model) renderActions() (string, []mouse.Rect, mouse.Rect) {
	if m.ctx.Loading || len(m.row.ShortcutActions) == 0 {
		return "", nil, mouse.Rect{}
	}

	var (
		sb    strings.Builder
		rects []mouse.Rect
		x     int
	)

	if m.row.PersistActions {
		// Inline actions stay visible; the disclosure toggle offers the
		// full set in a menu.
		for i, a := range m.row.ShortcutActions {
			if i > 0 {
				sb.WriteString(" ")
				x++
			}
			w := m.writeAction(&sb, a)
			rects = append(rects, mouse.Rect{X: x, Y: 0, W: w, H: 1})
			x += w
		}
		sb.WriteString(" ")
		x++
		glyphStyle := styles.Disclosure
		if m.actionsVisible {
			glyphStyle = styles.DisclosureOpen
		}
		sb.WriteString(glyphStyle.Render(disclosureGlyph))
		disclosure := mouse.Rect{X: x, Y: 0, W: textutil.Width(disclosureGlyph), H: 1}
		return sb.String(), rects, disclosure
	}

	// Segmented inline group, no disclosure.
	for i, a := range m.row.ShortcutActions {
		if i > 0 {
			sb.WriteString(styles.Subtle.Render(actionSeparator))
			x++
		}
		w := m.writeAction(&sb, a)
		rects = append(rects, mouse.Rect{X: x, Y: 0, W: w, H: 1})
		x += w
	}
	return sb.String(), rects, mouse.Rect{}
}

func (m *Model) writeAction(sb *strings.Builder, a Action) int {
	label := a.Label
	style := styles.ActionButton
	if a.Disabled {
		style = styles.ActionDisabled
	}
	sb.WriteString(style.Render(label))
	// ActionButton pads one cell each side.
	return textutil.Width(label) + 2
}

// menuOffered reports whether a disclosure menu exists for this row:
// only persist-actions rows get a toggle, and loading suppresses it.
func (m *Model) menuOffered() bool {
	return m.row.PersistActions && len(m.row.ShortcutActions) > 0 && !m.ctx.Loading
}

func (m *Model) titleStyle() lipgloss.Style {
	if m.row.URL != "" {
		if m.focused {
			return styles.AnchorFocused
		}
		return styles.Anchor
	}
	if m.focused {
		return styles.RowFocused
	}
	if m.IsSelected() {
		return styles.RowSelected
	}
	return styles.RowNormal
}
