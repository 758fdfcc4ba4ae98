package shape

import (
	"torus-snake/game/input"
	"torus-snake/game/manager"
)

const (
	HUDHeight   = 40  // Score bar above the board
	PanelHeight = 130 // Control buttons below the board
	buttonGap   = 6
	maxButton   = 48
)

// Layout splits the window into score bar, board surface and button panel
type Layout struct {
	HUD   Rect
	Board Rect
	Panel Rect
}

func NewLayout(screenWidth, screenHeight int) Layout {
	w, h := float32(screenWidth), float32(screenHeight)
	boardH := h - HUDHeight - PanelHeight
	if boardH < 0 {
		boardH = 0
	}
	return Layout{
		HUD:   Rect{X: 0, Y: 0, W: w, H: HUDHeight},
		Board: Rect{X: 0, Y: HUDHeight, W: w, H: boardH},
		Panel: Rect{X: 0, Y: HUDHeight + boardH, W: w, H: PanelHeight},
	}
}

type ButtonID int

const (
	ButtonUp ButtonID = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonStart
	ButtonPause
	ButtonRestart
)

// Command returns the input command a button press issues
func (id ButtonID) Command() input.Command {
	switch id {
	case ButtonUp:
		return input.Up
	case ButtonDown:
		return input.Down
	case ButtonLeft:
		return input.Left
	case ButtonRight:
		return input.Right
	case ButtonStart:
		return input.Start
	case ButtonPause:
		return input.Pause
	case ButtonRestart:
		return input.Restart
	}
	return input.None
}

type Button struct {
	ID     ButtonID
	Bounds Rect
}

// Label returns the caption for a button in the given control state
func (b Button) Label(c manager.Controls) string {
	switch b.ID {
	case ButtonUp:
		return "^"
	case ButtonDown:
		return "v"
	case ButtonLeft:
		return "<"
	case ButtonRight:
		return ">"
	case ButtonStart:
		if c.StartLabel == "" {
			return "Start"
		}
		return c.StartLabel
	case ButtonPause:
		return "Pause"
	case ButtonRestart:
		return "Restart"
	}
	return ""
}

// Enabled reports whether the button accepts presses. The d-pad is always
// live; the session ignores it outside of play.
func (b Button) Enabled(c manager.Controls) bool {
	switch b.ID {
	case ButtonStart:
		return c.StartEnabled
	case ButtonPause:
		return c.PauseEnabled
	case ButtonRestart:
		return c.RestartEnabled
	}
	return true
}

// Buttons lays out a d-pad on the left half of the panel and the action
// buttons in a row on the right half.
func Buttons(panel Rect) []Button {
	s := (panel.H - 4*buttonGap) / 3
	if s > maxButton {
		s = maxButton
	}
	if s < 0 {
		s = 0
	}

	padCX := panel.X + panel.W/4
	top := panel.Y + (panel.H-3*s-2*buttonGap)/2
	mid := top + s + buttonGap
	bottom := mid + s + buttonGap

	actionW := 2 * s
	rowW := 3*actionW + 2*buttonGap
	actionX := panel.X + panel.W*3/4 - rowW/2
	actionY := panel.Y + (panel.H-s)/2

	return []Button{
		{ID: ButtonUp, Bounds: Rect{X: padCX - s/2, Y: top, W: s, H: s}},
		{ID: ButtonLeft, Bounds: Rect{X: padCX - s/2 - buttonGap - s, Y: mid, W: s, H: s}},
		{ID: ButtonRight, Bounds: Rect{X: padCX + s/2 + buttonGap, Y: mid, W: s, H: s}},
		{ID: ButtonDown, Bounds: Rect{X: padCX - s/2, Y: bottom, W: s, H: s}},
		{ID: ButtonStart, Bounds: Rect{X: actionX, Y: actionY, W: actionW, H: s}},
		{ID: ButtonPause, Bounds: Rect{X: actionX + actionW + buttonGap, Y: actionY, W: actionW, H: s}},
		{ID: ButtonRestart, Bounds: Rect{X: actionX + 2*(actionW+buttonGap), Y: actionY, W: actionW, H: s}},
	}
}

// HitTest finds the enabled button under v
func HitTest(buttons []Button, c manager.Controls, v Vec) (Button, bool) {
	for _, b := range buttons {
		if b.Bounds.Contains(v) && b.Enabled(c) {
			return b, true
		}
	}
	return Button{}, false
}
