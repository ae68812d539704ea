// Package row implements an interactive list row: one list entry combining
// display, selection, activation, and a disclosure menu of secondary
// actions. A row owns its interaction state (focus, disclosure) and reads
// the shared list state through a ListContext; its only write path across
// the component boundary is the context's selection-change callback.
package row

import (
	"errors"
	"fmt"

	"github.com/wilbur182/rowkit/locale"
)

// ErrNoActivation is returned by Validate for rows with neither a
// navigation URL nor an activation callback.
var ErrNoActivation = errors.New("row has no url or click handler")

// Row is the static configuration of one list entry.
//
// A row activates either by navigating to URL or by invoking OnClick.
// At least one must be set; both may be set, in which case a primary
// click invokes the callback and then follows the navigation.
type Row struct {
	// ID uniquely identifies the row within its list.
	ID string

	// Title is the row's primary text. For navigation rows it doubles
	// as the anchor.
	Title string

	// Media is an optional decoration glyph with no behavioral role.
	Media string

	// URL is the navigation destination followed on activation.
	URL string

	// OnClick is the activation callback, invoked with the row id.
	OnClick func(id string)

	// ShortcutActions are secondary actions rendered inline or behind
	// the disclosure toggle.
	ShortcutActions []Action

	// PersistActions keeps shortcut actions visible inline and offers a
	// disclosure toggle in addition; when false the actions render as a
	// plain inline group with no disclosure.
	PersistActions bool

	// AccessibilityLabel names the row in the selection checkbox's
	// accessible label. Falls back to a generic term when empty.
	AccessibilityLabel string
}

// Validate checks the row's structural invariants.
func (r Row) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("row %q: missing id", r.Title)
	}
	if r.URL == "" && r.OnClick == nil {
		return fmt.Errorf("row %q: %w", r.ID, ErrNoActivation)
	}
	return nil
}

// hasCallback reports whether the row activates via callback. The blur
// comparison in HandleBlur branches on this: a callback row's single
// focusable surface is the row itself, while a navigation row's
// distinguished focusable element is its anchor.
func (r Row) hasCallback() bool {
	return r.OnClick != nil
}

// Model is a Row plus its interaction state. The state starts zeroed,
// is mutated only by the handler methods, and is discarded with the
// model; nothing persists across a remount.
type Model struct {
	row Row
	ctx ListContext
	loc *locale.Localizer

	focused        bool // the row subtree holds focus
	focusedInner   bool // focus is on a nested interactive descendant
	actionsVisible bool // disclosure menu open
}

// New creates a row model. The context may be the zero value for rows
// outside any selectable list.
func New(r Row, ctx ListContext) (Model, error) {
	if err := r.Validate(); err != nil {
		return Model{}, err
	}
	return Model{row: r, ctx: ctx, loc: locale.Default()}, nil
}

// SetLocalizer overrides the localizer used for accessible labels.
func (m *Model) SetLocalizer(loc *locale.Localizer) {
	if loc != nil {
		m.loc = loc
	}
}

// Row returns the row's static configuration.
func (m *Model) Row() Row {
	return m.row
}

// Context returns the list context the row currently sees.
func (m *Model) Context() ListContext {
	return m.ctx
}

// SetContext replaces the shared list context. Entering the loading
// state closes the disclosure menu, keeping the menu-only-when-ready
// invariant without the renderer having to care.
func (m *Model) SetContext(ctx ListContext) {
	m.ctx = ctx
	if ctx.Loading {
		m.actionsVisible = false
	}
}

// Reset clears all interaction state, as on a fresh mount.
func (m *Model) Reset() {
	m.focused = false
	m.focusedInner = false
	m.actionsVisible = false
}

// Focused reports whether the row subtree holds focus.
func (m *Model) Focused() bool { return m.focused }

// FocusedInner reports whether a nested interactive descendant holds focus.
func (m *Model) FocusedInner() bool { return m.focusedInner }

// Focusable reports whether the row participates in focus traversal.
// Loading rows do not.
func (m *Model) Focusable() bool { return !m.ctx.Loading }

// HandleAnchorFocus records focus landing directly on the primary
// activation element.
func (m *Model) HandleAnchorFocus() {
	m.focused = true
	m.focusedInner = false
}

// HandleFocus records any focus event bubbling from the row subtree.
// focusedInner is left alone; a more specific handler owns it.
func (m *Model) HandleFocus() {
	m.focused = true
}

// HandleBlur records focus leaving some element in the subtree. related
// is the target now receiving focus: TargetNone means focus left the
// subtree entirely, which clears focused. A blur landing on this row's
// distinguished inner element (the root for callback rows, the anchor
// for navigation rows) marks focusedInner instead. Other in-subtree
// blurs change nothing.
func (m *Model) HandleBlur(related Target) {
	if related == TargetNone {
		m.focused = false
		return
	}
	if m.row.hasCallback() {
		if related == TargetRoot {
			m.focusedInner = true
		}
		return
	}
	if related == TargetAnchor {
		m.focusedInner = true
	}
}

// HandleMouseDown records a pointer press inside the subtree. Pointer
// interactions grant focus without a guaranteed focus-event ordering,
// so the inner flag is set here directly.
func (m *Model) HandleMouseDown() {
	m.focusedInner = true
}

// IsSelected reports whether this row is selected in the shared context:
// true when the context carries the select-all sentinel or when the
// row's id is a member of the selected set.
func (m *Model) IsSelected() bool {
	return m.ctx.Selected.Has(m.row.ID)
}

// Select requests the row's selection state become value. It is a silent
// no-op without an id or a selection-change callback. Selecting focuses
// the row and its inner control, then reports the change upward exactly
// once.
func (m *Model) Select(value bool) {
	if m.row.ID == "" || m.ctx.OnSelectionChange == nil {
		return
	}
	m.focused = true
	m.focusedInner = true
	m.ctx.OnSelectionChange(value, m.row.ID)
}

// CheckboxDisabled reports whether the selection control is inert.
func (m *Model) CheckboxDisabled() bool {
	return m.ctx.Loading
}

// CheckboxLabel returns the accessible label for the selection control,
// reflecting the row's current selected state.
func (m *Model) CheckboxLabel() string {
	return m.loc.SelectLabel(m.row.AccessibilityLabel, m.IsSelected())
}

// ActionsVisible reports whether the disclosure menu is open.
func (m *Model) ActionsVisible() bool { return m.actionsVisible }

// ToggleActions flips the disclosure menu. Rows with no shortcut actions,
// or rows in a loading list, have nothing to disclose and stay closed.
func (m *Model) ToggleActions() {
	if len(m.row.ShortcutActions) == 0 || m.ctx.Loading {
		return
	}
	m.actionsVisible = !m.actionsVisible
}

// CloseActions closes the disclosure menu. Invoked on external close
// requests (click outside, escape).
func (m *Model) CloseActions() {
	m.actionsVisible = false
}
