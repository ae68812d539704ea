package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Rect represents a rectangular region in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the point (x, y) is within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangular hit region with associated data.
// Components register one region per interactive sub-target (a row's
// checkbox, its anchor, a disclosure toggle) so clicks can be routed
// by target rather than by coordinate math at the call site.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap tracks hit regions for mouse click detection.
type HitMap struct {
	regions []Region
}

// NewHitMap creates a new empty HitMap.
func NewHitMap() *HitMap {
	return &HitMap{
		regions: make([]Region, 0, 32),
	}
}

// Clear removes all regions from the hit map.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add adds a new region to the hit map.
func (h *HitMap) Add(id string, rect Rect, data any) {
	h.regions = append(h.regions, Region{
		ID:   id,
		Rect: rect,
		Data: data,
	})
}

// AddRect adds a region using individual coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: height}, data)
}

// Test returns the innermost region containing the point, or nil if none.
// Regions registered later win, so register a row before its sub-targets.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns a copy of all registered regions (for testing).
func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// ActionType represents the type of mouse action detected.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionScrollUp
	ActionScrollDown
	ActionHover
)

// Action represents a processed mouse event. Ctrl and Alt carry the
// modifier state of the originating click so callers can implement
// modifier-dependent activation (open in new context).
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
	Delta  int // scroll delta
	Ctrl   bool
	Alt    bool
}

// Handler combines a HitMap with click timing for double-click detection.
type Handler struct {
	HitMap *HitMap

	lastClickTime   time.Time
	lastClickRegion string
}

// NewHandler creates a new mouse handler.
func NewHandler() *Handler {
	return &Handler{
		HitMap: NewHitMap(),
	}
}

// Clear resets the handler state and clears the hit map.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleMouse processes a tea.MouseMsg into an Action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			region := h.HitMap.Test(msg.X, msg.Y)
			action := Action{
				Type:   ActionClick,
				Region: region,
				X:      msg.X,
				Y:      msg.Y,
				Ctrl:   msg.Ctrl,
				Alt:    msg.Alt,
			}
			if region == nil {
				return action
			}
			// Double-click: same region within 400ms.
			now := time.Now()
			if region.ID == h.lastClickRegion && now.Sub(h.lastClickTime) < 400*time.Millisecond {
				action.Type = ActionDoubleClick
				// Reset so a triple click does not count as another double.
				h.lastClickRegion = ""
				h.lastClickTime = time.Time{}
			} else {
				h.lastClickRegion = region.ID
				h.lastClickTime = now
			}
			return action

		case tea.MouseButtonWheelUp:
			return Action{
				Type:   ActionScrollUp,
				Region: h.HitMap.Test(msg.X, msg.Y),
				X:      msg.X,
				Y:      msg.Y,
				Delta:  -3,
			}

		case tea.MouseButtonWheelDown:
			return Action{
				Type:   ActionScrollDown,
				Region: h.HitMap.Test(msg.X, msg.Y),
				X:      msg.X,
				Y:      msg.Y,
				Delta:  3,
			}
		}

	case tea.MouseActionMotion:
		return Action{
			Type:   ActionHover,
			Region: h.HitMap.Test(msg.X, msg.Y),
			X:      msg.X,
			Y:      msg.Y,
		}
	}

	return Action{Type: ActionNone}
}
