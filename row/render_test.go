package row

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/wilbur182/rowkit/internal/textutil"
)

func plainRender(t *testing.T, m *Model, width int) (string, Layout) {
	t.Helper()
	s, layout := m.Render(width)
	return ansi.Strip(s), layout
}

func actionsRow(persist bool) Row {
	return Row{
		ID: "a", Title: "Orders", URL: "https://x",
		ShortcutActions: []Action{
			{ID: "edit", Label: "Edit"},
			{ID: "archive", Label: "Archive", Disabled: true},
		},
		PersistActions: persist,
	}
}

func TestRender_Checkbox(t *testing.T) {
	tests := []struct {
		name     string
		selected Selection
		want     string
	}{
		{"unselected", SelectIDs(), "[ ]"},
		{"selected", SelectIDs("a"), "[x]"},
		{"select-all", SelectAll(), "[x]"},
	}
	for _, tt := range tests {
		m := mustNew(t, navRow("a"), ListContext{Selectable: true, Selected: tt.selected})
		out, layout := plainRender(t, &m, 40)
		if !strings.HasPrefix(out, tt.want) {
			t.Errorf("%s: output %q should start with %q", tt.name, out, tt.want)
		}
		if got := layout.Checkbox.W; got != textutil.Width(tt.want) {
			t.Errorf("%s: checkbox rect width = %d, want display width %d", tt.name, got, textutil.Width(tt.want))
		}
	}
}

func TestRender_NoCheckboxWhenNotSelectable(t *testing.T) {
	m := mustNew(t, navRow("a"), ListContext{})
	out, layout := plainRender(t, &m, 40)
	if strings.Contains(out, "[ ]") {
		t.Errorf("output %q should not contain a checkbox", out)
	}
	if layout.Checkbox.W != 0 {
		t.Error("checkbox rect should be empty")
	}
}

func TestRender_AnchorRectOnlyForNavigationRows(t *testing.T) {
	nav := mustNew(t, navRow("a"), ListContext{})
	if _, layout := plainRender(t, &nav, 40); layout.Anchor.W == 0 {
		t.Error("navigation row should expose an anchor rect")
	}

	var calls []string
	cb := mustNew(t, callbackRow("a", &calls), ListContext{})
	if _, layout := plainRender(t, &cb, 40); layout.Anchor.W != 0 {
		t.Error("callback row should not expose an anchor rect")
	}
}

func TestRender_NoActionsWhenEmpty(t *testing.T) {
	m := mustNew(t, navRow("a"), ListContext{})
	_, layout := plainRender(t, &m, 40)
	if len(layout.Actions) != 0 || layout.Disclosure.W != 0 || len(layout.MenuItems) != 0 {
		t.Error("row without shortcut actions should render no action markup")
	}
}

func TestRender_NoActionsWhileLoading(t *testing.T) {
	m := mustNew(t, actionsRow(true), ListContext{Loading: true})
	// Even with the internal flag forced open.
	m.actionsVisible = true

	out, layout := plainRender(t, &m, 60)
	if strings.Contains(out, "Edit") || strings.Contains(out, "⋯") {
		t.Errorf("loading row rendered action markup: %q", out)
	}
	if len(layout.Actions) != 0 || layout.Disclosure.W != 0 || len(layout.MenuItems) != 0 {
		t.Error("loading row should register no action hit rects")
	}
}

func TestRender_PersistActions_InlinePlusDisclosure(t *testing.T) {
	m := mustNew(t, actionsRow(true), ListContext{})
	out, layout := plainRender(t, &m, 60)

	if !strings.Contains(out, "Edit") || !strings.Contains(out, "Archive") {
		t.Errorf("inline actions missing: %q", out)
	}
	if !strings.Contains(out, "⋯") {
		t.Errorf("disclosure toggle missing: %q", out)
	}
	if len(layout.Actions) != 2 || layout.Disclosure.W == 0 {
		t.Errorf("layout: %d action rects, disclosure width %d", len(layout.Actions), layout.Disclosure.W)
	}
	if layout.Height != 1 {
		t.Errorf("closed menu: height = %d, want 1", layout.Height)
	}
}

func TestRender_SegmentedGroup_NoDisclosure(t *testing.T) {
	m := mustNew(t, actionsRow(false), ListContext{})
	out, layout := plainRender(t, &m, 60)

	if !strings.Contains(out, "Edit") {
		t.Errorf("inline actions missing: %q", out)
	}
	if strings.Contains(out, "⋯") {
		t.Errorf("segmented group should have no disclosure: %q", out)
	}
	if layout.Disclosure.W != 0 {
		t.Error("no disclosure rect expected")
	}
}

func TestRender_OpenMenu(t *testing.T) {
	m := mustNew(t, actionsRow(true), ListContext{})
	m.ToggleActions()

	out, layout := plainRender(t, &m, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("open menu: %d lines, want 3 (row + 2 actions)", len(lines))
	}
	if layout.Height != 3 {
		t.Errorf("layout.Height = %d, want 3", layout.Height)
	}
	if len(layout.MenuItems) != 2 {
		t.Errorf("menu rects = %d, want 2", len(layout.MenuItems))
	}
	for i, r := range layout.MenuItems {
		if r.Y != i+1 {
			t.Errorf("menu item %d at y=%d, want %d", i, r.Y, i+1)
		}
	}
}

func TestRender_TruncatesTitle(t *testing.T) {
	r := navRow("a")
	r.Title = strings.Repeat("long title ", 20)
	m := mustNew(t, r, ListContext{})
	out, _ := plainRender(t, &m, 30)
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Errorf("line width %d exceeds 30: %q", w, line)
		}
	}
}
