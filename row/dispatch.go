package row

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Target identifies an interactive element inside a row's subtree, or
// TargetNone for anything outside it.
type Target int

const (
	TargetNone Target = iota
	TargetRoot
	TargetAnchor
	TargetCheckbox
	TargetDisclosure
	TargetAction
)

// ClickEvent is a primary interaction landing somewhere in the row.
type ClickEvent struct {
	// Target is the element under the pointer.
	Target Target

	// ActionIndex identifies the shortcut action for TargetAction clicks.
	ActionIndex int

	// Ctrl and Meta carry the platform open-in-new-context modifiers.
	Ctrl bool
	Meta bool
}

// NavigateMsg asks the host to follow a row's navigation destination.
// NewContext requests a new browsing context (the terminal analogue being
// an external open rather than in-place navigation).
type NavigateMsg struct {
	ID         string
	URL        string
	NewContext bool
}

// NavigateCmd builds the navigation command for the row's URL, targeting
// a new browsing context when newContext is set. Nil for callback-only
// rows.
func (m *Model) NavigateCmd(newContext bool) tea.Cmd {
	if m.row.URL == "" {
		return nil
	}
	id, url := m.row.ID, m.row.URL
	return func() tea.Msg {
		return NavigateMsg{ID: id, URL: url, NewContext: newContext}
	}
}

// AnchorCmd is the anchor's native activation: navigation to the row's
// URL in the current context. The containing list invokes it directly for
// unmodified clicks landing on the anchor itself, preserving plain anchor
// semantics; HandleClick invokes it to simulate anchor activation for
// clicks landing elsewhere on a navigation row. Nil for callback-only
// rows.
func (m *Model) AnchorCmd() tea.Cmd {
	return m.NavigateCmd(false)
}

// HandleClick routes a primary click event.
//
// In select mode every primary click is a selection toggle; the event is
// consumed (propagate=false) so ancestors never see it. Outside select
// mode, clicks on the anchor itself are deliberately untouched so the
// anchor's native handling proceeds. Any other click invokes the
// activation callback if present, then follows the navigation target:
// with a ctrl/meta modifier as a new-context request, otherwise as a
// simulated anchor activation so clicking anywhere on the row navigates.
func (m *Model) HandleClick(ev ClickEvent) (cmd tea.Cmd, propagate bool) {
	if m.ctx.SelectMode {
		m.Select(!m.IsSelected())
		return nil, false
	}

	if ev.Target == TargetAnchor {
		return nil, true
	}

	if m.row.OnClick != nil {
		m.row.OnClick(m.row.ID)
	}

	if m.row.URL != "" {
		return m.NavigateCmd(ev.Ctrl || ev.Meta), true
	}

	return nil, true
}

// HandleEnter routes keyboard activation. Keyboard activation never
// targets bulk selection, and it carries no id: a focused row activated
// from the keyboard calls the callback with an empty id. Rows without a
// callback ignore it.
func (m *Model) HandleEnter() {
	if m.ctx.SelectMode {
		return
	}
	if m.row.OnClick != nil {
		m.row.OnClick("")
	}
}

// InvokeAction runs the i-th shortcut action. Out-of-range indexes and
// disabled actions are no-ops.
func (m *Model) InvokeAction(i int) tea.Cmd {
	if i < 0 || i >= len(m.row.ShortcutActions) {
		return nil
	}
	return m.row.ShortcutActions[i].Invoke()
}
