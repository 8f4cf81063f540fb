package engine

import "strconv"

// Router sends input to the focused game. Tab and the digit keys move focus;
// R resets the focused game. Pointer coordinates arrive in screen space and
// are translated by Origin before reaching the game.
type Router struct {
	driver *Driver
	focus  int
	// Origin is where the focused canvas sits on screen.
	OriginX, OriginY float64
	// OnFocus is called after focus changes.
	OnFocus func(index int)
}

// NewRouter returns a router focused on the first loop of d.
func NewRouter(d *Driver) *Router {
	return &Router{driver: d}
}

// Focus returns the index of the focused loop.
func (r *Router) Focus() int { return r.focus }

// Focused returns the focused loop, or nil when there are none.
func (r *Router) Focused() *Loop {
	loops := r.driver.Loops()
	if r.focus < 0 || r.focus >= len(loops) {
		return nil
	}
	return loops[r.focus]
}

// SetFocus focuses loop i. Out of range indexes are ignored.
func (r *Router) SetFocus(i int) {
	if i < 0 || i >= len(r.driver.Loops()) || i == r.focus {
		return
	}
	r.focus = i
	if r.OnFocus != nil {
		r.OnFocus(i)
	}
}

// Dispatch routes one event.
func (r *Router) Dispatch(ev InputEvent) {
	loops := r.driver.Loops()
	if len(loops) == 0 {
		return
	}
	if ev.Kind == KeyDown {
		switch ev.Key {
		case KeyTab:
			r.SetFocus((r.focus + 1) % len(loops))
			return
		case KeyReset:
			r.Focused().Dispatch(Do(ActionReset))
			return
		}
		if n, err := strconv.Atoi(ev.Key); err == nil && n >= 1 && n <= len(loops) {
			r.SetFocus(n - 1)
			return
		}
	}
	if ev.Kind == PointerMove || ev.Kind == PointerDown {
		ev.X -= r.OriginX
		ev.Y -= r.OriginY
	}
	r.Focused().Dispatch(ev)
}

// Scripted is one event of a replay, delivered before the given frame runs.
type Scripted struct {
	Frame int
	Event InputEvent
}

// Replay feeds script through r while stepping the driver for frames
// frames. Events scheduled for frame f are dispatched before step f.
func Replay(r *Router, script []Scripted, frames int) {
	next := 0
	for f := 0; f < frames; f++ {
		for next < len(script) && script[next].Frame <= f {
			r.Dispatch(script[next].Event)
			next++
		}
		r.driver.Step()
	}
}
