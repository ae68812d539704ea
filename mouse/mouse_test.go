package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{5, 2, true},
		{6, 1, false},
		{2, 3, false},
		{1, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitMap_LaterRegionsWin(t *testing.T) {
	h := NewHitMap()
	h.AddRect("row", 0, 0, 40, 1, "row")
	h.AddRect("checkbox", 0, 0, 3, 1, "checkbox")

	if got := h.Test(1, 0); got == nil || got.ID != "checkbox" {
		t.Errorf("Test(1,0) = %+v, want checkbox", got)
	}
	if got := h.Test(10, 0); got == nil || got.ID != "row" {
		t.Errorf("Test(10,0) = %+v, want row", got)
	}
	if got := h.Test(50, 0); got != nil {
		t.Errorf("Test(50,0) = %+v, want nil", got)
	}
}

func TestHitMap_Clear(t *testing.T) {
	h := NewHitMap()
	h.AddRect("a", 0, 0, 5, 1, nil)
	h.Clear()
	if got := h.Test(1, 0); got != nil {
		t.Errorf("after Clear, Test = %+v", got)
	}
	if len(h.Regions()) != 0 {
		t.Error("after Clear, regions remain")
	}
}

func press(x, y int, ctrl bool) tea.MouseMsg {
	return tea.MouseMsg{
		X: x, Y: y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		Ctrl:   ctrl,
	}
}

func TestHandler_ClickCarriesModifiers(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("row", 0, 0, 10, 1, nil)

	action := h.HandleMouse(press(3, 0, true))
	if action.Type != ActionClick {
		t.Fatalf("type = %v, want click", action.Type)
	}
	if action.Region == nil || action.Region.ID != "row" {
		t.Errorf("region = %+v", action.Region)
	}
	if !action.Ctrl {
		t.Error("ctrl modifier lost")
	}
}

func TestHandler_ClickOutsideRegions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("row", 0, 0, 10, 1, nil)

	action := h.HandleMouse(press(20, 5, false))
	if action.Type != ActionClick || action.Region != nil {
		t.Errorf("outside click: type=%v region=%+v, want click with nil region", action.Type, action.Region)
	}
}

func TestHandler_DoubleClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("row", 0, 0, 10, 1, nil)

	first := h.HandleMouse(press(3, 0, false))
	second := h.HandleMouse(press(3, 0, false))
	third := h.HandleMouse(press(3, 0, false))

	if first.Type != ActionClick {
		t.Errorf("first click: %v", first.Type)
	}
	if second.Type != ActionDoubleClick {
		t.Errorf("second click: %v, want double", second.Type)
	}
	// A third rapid click starts over rather than chaining doubles.
	if third.Type != ActionClick {
		t.Errorf("third click: %v, want single", third.Type)
	}
}

func TestHandler_Scroll(t *testing.T) {
	h := NewHandler()
	up := h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if up.Type != ActionScrollUp || up.Delta >= 0 {
		t.Errorf("wheel up: type=%v delta=%d", up.Type, up.Delta)
	}
	down := h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if down.Type != ActionScrollDown || down.Delta <= 0 {
		t.Errorf("wheel down: type=%v delta=%d", down.Type, down.Delta)
	}
}

func TestHandler_Hover(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("row", 0, 0, 10, 1, nil)

	action := h.HandleMouse(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionMotion})
	if action.Type != ActionHover || action.Region == nil {
		t.Errorf("hover: type=%v region=%+v", action.Type, action.Region)
	}
}
