// Package input translates keyboard and button events into session commands.
package input

import (
	"github.com/gdamore/tcell/v2"

	"torus-snake/game/types"
)

// Command is a user request delivered to the game core
type Command int

const (
	None Command = iota
	Up
	Down
	Left
	Right
	Start
	Pause
	TogglePause
	Restart
)

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Start:
		return "start"
	case Pause:
		return "pause"
	case TogglePause:
		return "toggle-pause"
	case Restart:
		return "restart"
	default:
		return "none"
	}
}

// Direction returns the heading a movement command asks for
func (c Command) Direction() types.Direction {
	switch c {
	case Up:
		return types.UP
	case Down:
		return types.DOWN
	case Left:
		return types.LEFT
	case Right:
		return types.RIGHT
	default:
		return types.NONE
	}
}

// Target is the session surface commands act on
type Target interface {
	Direction(d types.Direction) bool
	Start()
	Pause()
	TogglePause()
	Restart()
}

// Apply dispatches cmd to t
func Apply(t Target, cmd Command) {
	switch cmd {
	case Up, Down, Left, Right:
		t.Direction(cmd.Direction())
	case Start:
		t.Start()
	case Pause:
		t.Pause()
	case TogglePause:
		t.TogglePause()
	case Restart:
		t.Restart()
	}
}

// FromRune maps printable keys: space toggles pause, r restarts
func FromRune(r rune) Command {
	switch r {
	case ' ':
		return TogglePause
	case 'r', 'R':
		return Restart
	default:
		return None
	}
}

// FromTcell maps a terminal key event
func FromTcell(ev *tcell.EventKey) Command {
	return FromKey(ev.Key(), ev.Rune())
}

// FromKey maps a tcell key code, using r for KeyRune
func FromKey(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyUp:
		return Up
	case tcell.KeyDown:
		return Down
	case tcell.KeyLeft:
		return Left
	case tcell.KeyRight:
		return Right
	case tcell.KeyRune:
		return FromRune(r)
	}
	return None
}

// Drain pulls key codes from next until it returns 0 and maps each bound key
// to its command, keeping press order.
func Drain(next func() int32, bindings map[int32]Command) []Command {
	var cmds []Command
	for key := next(); key != 0; key = next() {
		if cmd, ok := bindings[key]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
