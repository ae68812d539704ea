// Package list implements a resource list: the ambient container that owns
// the selection context its rows read, routes keyboard and mouse input to
// them, and renders loading placeholders while content is fetched.
package list

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/rowkit/locale"
	"github.com/wilbur182/rowkit/mouse"
	"github.com/wilbur182/rowkit/row"
	"github.com/wilbur182/rowkit/styles"
)

// KeyMap defines the list's key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Home       key.Binding
	End        key.Binding
	Activate   key.Binding
	Toggle     key.Binding
	SelectMode key.Binding
	SelectAll  key.Binding
	Actions    key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		SelectMode: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select mode")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a", "a"), key.WithHelp("a", "select all")),
		Actions:    key.NewBinding(key.WithKeys("."), key.WithHelp(".", "actions")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// hitData identifies what a registered hit region points at.
type hitData struct {
	rowIdx    int
	target    row.Target
	actionIdx int
}

// Model is the resource list state.
type Model struct {
	rows []row.Model
	keys KeyMap
	loc  *locale.Localizer

	selectable bool
	selectMode bool
	loading    bool
	selected   row.Selection

	cursor int
	width  int

	skeleton     skeleton
	skeletonRows int
	handler      *mouse.Handler
}

// Option configures a list.
type Option func(*Model)

// WithKeyMap overrides the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithLocalizer overrides the localizer used for list and row labels.
func WithLocalizer(loc *locale.Localizer) Option {
	return func(m *Model) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// WithSelectable offers selection UI on every row.
func WithSelectable() Option {
	return func(m *Model) { m.selectable = true }
}

// New builds a list from row configurations. Rows are validated; a row
// with no activation is a configuration error surfaced here, not at
// interaction time.
func New(rows []row.Row, opts ...Option) (*Model, error) {
	m := &Model{
		keys:         DefaultKeyMap(),
		loc:          locale.Default(),
		selected:     row.SelectIDs(),
		skeletonRows: 5,
		handler:      mouse.NewHandler(),
		width:        80,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.rows = make([]row.Model, 0, len(rows))
	for _, r := range rows {
		rm, err := row.New(r, m.context())
		if err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		rm.SetLocalizer(m.loc)
		m.rows = append(m.rows, rm)
	}
	return m, nil
}

// context assembles the shared list context rows read.
func (m *Model) context() row.ListContext {
	return row.ListContext{
		Selectable:        m.selectable,
		SelectMode:        m.selectMode,
		Loading:           m.loading,
		Selected:          m.selected,
		OnSelectionChange: m.applySelection,
	}
}

// pushContext re-shares the current context with every row.
func (m *Model) pushContext() {
	ctx := m.context()
	for i := range m.rows {
		m.rows[i].SetContext(ctx)
	}
}

// applySelection is the single write path back from rows. Selecting a
// row while not in select mode enters it, matching the checkbox's role
// as the select-mode entry point.
func (m *Model) applySelection(selected bool, id string) {
	if selected {
		m.selected = m.selected.With(id)
		m.selectMode = true
	} else {
		m.selected = m.selected.Without(id)
	}
	m.pushContext()
}

// Init satisfies tea.Model-style composition.
func (m *Model) Init() tea.Cmd {
	m.pushContext()
	return nil
}

// SetWidth sets the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetLoading flips the loading state. While loading, rows render as
// skeleton placeholders, disclosure menus close, and selection controls
// go inert. The returned command drives the placeholder animation.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	if m.loading == loading {
		return nil
	}
	m.loading = loading
	m.pushContext()
	if loading {
		return m.skeleton.start()
	}
	m.skeleton.stop()
	return nil
}

// Loading reports the loading state.
func (m *Model) Loading() bool { return m.loading }

// SelectMode reports whether the list is in bulk-selection mode.
func (m *Model) SelectMode() bool { return m.selectMode }

// Selected returns the current selection.
func (m *Model) Selected() row.Selection { return m.selected }

// SetSelectMode enters or leaves bulk-selection mode.
func (m *Model) SetSelectMode(on bool) {
	m.selectMode = on
	m.pushContext()
}

// SelectAllToggle flips between the select-all sentinel and an empty
// selection.
func (m *Model) SelectAllToggle() {
	if m.selected.IsAll() {
		m.selected = row.SelectIDs()
	} else {
		m.selected = row.SelectAll()
		m.selectMode = true
	}
	m.pushContext()
}

// Cursor returns the focused row index.
func (m *Model) Cursor() int { return m.cursor }

// RowAt exposes a row model, primarily for composition and tests.
func (m *Model) RowAt(i int) *row.Model {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return &m.rows[i]
}

// Len returns the number of rows.
func (m *Model) Len() int { return len(m.rows) }

// moveCursor shifts focus between rows: the departing row sees a blur to
// a target outside its subtree, the arriving row sees focus landing on
// its primary element.
func (m *Model) moveCursor(to int) {
	if len(m.rows) == 0 {
		return
	}
	to = max(0, min(to, len(m.rows)-1))
	if to == m.cursor {
		return
	}
	m.rows[m.cursor].HandleBlur(row.TargetNone)
	m.cursor = to
	cur := &m.rows[m.cursor]
	if !cur.Focusable() {
		return
	}
	if cur.Row().URL != "" {
		cur.HandleAnchorFocus()
	} else {
		cur.HandleFocus()
	}
}

// closeMenus closes every disclosure menu, optionally sparing one row.
func (m *Model) closeMenus(except int) {
	for i := range m.rows {
		if i != except {
			m.rows[i].CloseActions()
		}
	}
}

// Update routes input to rows.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case SkeletonTickMsg:
		return m.skeleton.update(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	cur := &m.rows[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows) - 1)

	case key.Matches(msg, m.keys.Activate):
		cur.HandleEnter()

	case key.Matches(msg, m.keys.Toggle):
		if m.selectable && !cur.CheckboxDisabled() {
			cur.Select(!cur.IsSelected())
		}

	case key.Matches(msg, m.keys.SelectMode):
		if m.selectable {
			m.SetSelectMode(!m.selectMode)
		}

	case key.Matches(msg, m.keys.SelectAll):
		if m.selectable {
			m.SelectAllToggle()
		}

	case key.Matches(msg, m.keys.Actions):
		cur.ToggleActions()
		if cur.ActionsVisible() {
			m.closeMenus(m.cursor)
		}

	case key.Matches(msg, m.keys.Cancel):
		if cur.ActionsVisible() {
			cur.CloseActions()
		} else if m.selectMode {
			m.SetSelectMode(false)
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	action := m.handler.HandleMouse(msg)
	if action.Type != mouse.ActionClick && action.Type != mouse.ActionDoubleClick {
		return nil
	}
	if action.Region == nil {
		// Click outside every row: an external close request for any
		// open disclosure menu.
		m.closeMenus(-1)
		return nil
	}

	data, ok := action.Region.Data.(hitData)
	if !ok {
		return nil
	}
	m.moveCursor(data.rowIdx)
	cur := &m.rows[data.rowIdx]

	switch data.target {
	case row.TargetDisclosure:
		// The disclosure toggle is its own activator, independent of
		// the row's selection and activation semantics.
		cur.ToggleActions()
		if cur.ActionsVisible() {
			m.closeMenus(data.rowIdx)
		}
		return nil

	case row.TargetCheckbox:
		if !m.selectMode {
			if !cur.CheckboxDisabled() {
				cur.Select(!cur.IsSelected())
			}
			return nil
		}
		// In select mode the checkbox is part of the larger selection
		// hit area; fall through to the dispatcher.

	case row.TargetAction:
		cmd := cur.InvokeAction(data.actionIdx)
		cur.CloseActions()
		return cmd

	case row.TargetAnchor:
		if !m.selectMode {
			// Never intercept clicks on the anchor itself; its native
			// activation proceeds untouched, including the open-in-new-
			// context modifier.
			cur.HandleMouseDown()
			return cur.NavigateCmd(action.Ctrl)
		}
	}

	cur.HandleMouseDown()
	m.closeMenus(data.rowIdx)
	cmd, _ := cur.HandleClick(row.ClickEvent{
		Target:      data.target,
		ActionIndex: data.actionIdx,
		Ctrl:        action.Ctrl,
		Meta:        false,
	})
	return cmd
}

// View renders the list and rebuilds the hit map to match.
func (m *Model) View() string {
	m.handler.Clear()

	if m.loading {
		gutter := 0
		if m.selectable {
			gutter = 4
		}
		return m.skeleton.view(m.width, m.skeletonRows, gutter)
	}

	var (
		out string
		y   int
	)

	if m.selectMode {
		header := m.loc.SelectedCount(m.selectedCount())
		if m.selected.IsAll() {
			header = m.loc.SelectAllLabel()
		}
		out += styles.Muted.Render(header) + "\n"
		y++
	}

	for i := range m.rows {
		if i > 0 {
			out += "\n"
		}
		line, layout := m.rows[i].Render(m.width)
		out += line

		// Row root first so sub-targets registered after it win hit
		// testing.
		m.handler.HitMap.AddRect(m.rows[i].Row().ID, 0, y, m.width, layout.Height,
			hitData{rowIdx: i, target: row.TargetRoot})
		m.addRegion(i, "checkbox", layout.Checkbox, y, row.TargetCheckbox, 0)
		m.addRegion(i, "anchor", layout.Anchor, y, row.TargetAnchor, 0)
		m.addRegion(i, "disclosure", layout.Disclosure, y, row.TargetDisclosure, 0)
		for ai, r := range layout.Actions {
			m.addRegion(i, fmt.Sprintf("action-%d", ai), r, y, row.TargetAction, ai)
		}
		for ai, r := range layout.MenuItems {
			m.addRegion(i, fmt.Sprintf("menu-%d", ai), r, y, row.TargetAction, ai)
		}
		y += layout.Height
	}
	return out
}

func (m *Model) addRegion(rowIdx int, kind string, r mouse.Rect, yOff int, target row.Target, actionIdx int) {
	if r.W == 0 {
		return
	}
	id := fmt.Sprintf("%s/%s", m.rows[rowIdx].Row().ID, kind)
	m.handler.HitMap.AddRect(id, r.X, yOff+r.Y, r.W, r.H,
		hitData{rowIdx: rowIdx, target: target, actionIdx: actionIdx})
}

// selectedCount is the bulk-selection readout: explicit count, or the
// full list length under the select-all sentinel.
func (m *Model) selectedCount() int {
	if m.selected.IsAll() {
		return len(m.rows)
	}
	return m.selected.Count()
}
