package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/triangles/internal/view"
)

// Action is a decoded, edge-triggered key press.
type Action int

const (
	ActionNone Action = iota
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
	ActionQuit
	ActionToggleHUD
)

func (a Action) String() string {
	switch a {
	case ActionPanLeft:
		return "pan_left"
	case ActionPanRight:
		return "pan_right"
	case ActionPanUp:
		return "pan_up"
	case ActionPanDown:
		return "pan_down"
	case ActionZoomIn:
		return "zoom_in"
	case ActionZoomOut:
		return "zoom_out"
	case ActionQuit:
		return "quit"
	case ActionToggleHUD:
		return "toggle_hud"
	}
	return "none"
}

var keymap = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyEscape, ActionQuit},
	{ebiten.KeyArrowLeft, ActionPanLeft},
	{ebiten.KeyArrowRight, ActionPanRight},
	{ebiten.KeyArrowDown, ActionPanDown},
	{ebiten.KeyArrowUp, ActionPanUp},
	{ebiten.KeyEqual, ActionZoomIn},
	{ebiten.KeyNumpadAdd, ActionZoomIn},
	{ebiten.KeyMinus, ActionZoomOut},
	{ebiten.KeyNumpadSubtract, ActionZoomOut},
	{ebiten.KeyTab, ActionToggleHUD},
}

// actionFor maps a key to its action, ActionNone for unbound keys.
func actionFor(k ebiten.Key) Action {
	for _, m := range keymap {
		if m.key == k {
			return m.action
		}
	}
	return ActionNone
}

// Apply mutates st for a view action and reports whether st changed.
// Non-view actions leave st untouched.
func Apply(a Action, st *view.State) bool {
	before := *st
	switch a {
	case ActionPanLeft:
		st.PanLeft()
	case ActionPanRight:
		st.PanRight()
	case ActionPanUp:
		st.PanUp()
	case ActionPanDown:
		st.PanDown()
	case ActionZoomIn:
		st.ZoomIn()
	case ActionZoomOut:
		st.ZoomOut()
	default:
		return false
	}
	return *st != before
}
