package game

import (
	"time"
)

// Loop schedules the two periodic activities of a session: the logic tick on
// a fixed interval and the render loop on the host's frame cadence. The host
// calls the session's Frame once per display frame; Loop decides whether a
// tick is due on that frame.
type Loop struct {
	clock    TimeProvider
	interval time.Duration

	logic      bool
	lastUpdate time.Time
	render     bool

	ticks  uint64
	frames uint64
}

func NewLoop(clock TimeProvider, interval time.Duration) *Loop {
	if clock == nil {
		clock = RealTime{}
	}
	return &Loop{
		clock:    clock,
		interval: interval,
	}
}

// StartLogic arms the ticker; the first tick fires one interval from now.
// Starting an active ticker does nothing.
func (l *Loop) StartLogic() {
	if l.logic {
		return
	}
	l.logic = true
	l.lastUpdate = l.clock.Now()
}

func (l *Loop) StopLogic() {
	l.logic = false
}

func (l *Loop) LogicActive() bool {
	return l.logic
}

// StartRender starts the render loop. At most one is ever active.
func (l *Loop) StartRender() {
	l.render = true
}

// StopRender tears the render loop down; steady-state play never calls it
func (l *Loop) StopRender() {
	l.render = false
}

func (l *Loop) RenderActive() bool {
	return l.render
}

// TickDue reports whether the logic tick should fire now and, if so,
// consumes it. Ticks stay on a fixed interval grid from StartLogic, so frame
// granularity does not stretch the period. At most one tick fires per call;
// after a stall of a whole interval or more the grid is re-anchored to now
// instead of bursting.
func (l *Loop) TickDue() bool {
	if !l.logic {
		return false
	}
	now := l.clock.Now()
	if now.Sub(l.lastUpdate) < l.interval {
		return false
	}
	l.lastUpdate = l.lastUpdate.Add(l.interval)
	if now.Sub(l.lastUpdate) >= l.interval {
		l.lastUpdate = now
	}
	l.ticks++
	return true
}

func (l *Loop) countFrame() {
	l.frames++
}

// Ticks returns how many logic ticks have fired
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Frames returns how many frames were rendered
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) Interval() time.Duration {
	return l.interval
}
