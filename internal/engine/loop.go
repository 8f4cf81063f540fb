package engine

import (
	"log"
	"runtime/debug"
)

// Loop steps a single game: clear, update, render. Loops share nothing, so
// a failing game never affects another game's cadence.
type Loop struct {
	game    Game
	surface Surface
	frame   int64
	resets  int
}

// NewLoop binds game to the surface it renders on. A nil surface skips
// rendering, which is how tests and headless replays run.
func NewLoop(game Game, surface Surface) *Loop {
	return &Loop{game: game, surface: surface}
}

func (l *Loop) Game() Game { return l.game }

// Frame returns how many steps have run.
func (l *Loop) Frame() int64 { return l.frame }

// Recovered returns how many times a failing step reset the game.
func (l *Loop) Recovered() int { return l.resets }

// Step runs one frame. A panic inside the game is logged and the game is
// reset to its initial state.
func (l *Loop) Step() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: %s step %d panicked: %v\n%s", l.game.Title(), l.frame, r, debug.Stack())
			l.resets++
			l.safeReset()
		}
	}()
	l.frame++
	if l.surface != nil {
		l.surface.Clear()
	}
	l.game.Update(1)
	if l.surface != nil {
		l.game.Render(l.surface)
	}
}

// Dispatch hands ev to the game, recovering the same way Step does.
func (l *Loop) Dispatch(ev InputEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: %s input %s panicked: %v", l.game.Title(), ev.Kind, r)
			l.resets++
			l.safeReset()
		}
	}()
	l.game.Handle(ev)
}

func (l *Loop) safeReset() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: %s reset panicked: %v", l.game.Title(), r)
		}
	}()
	l.game.Reset()
}

// Driver owns every loop and steps them all once per host frame.
type Driver struct {
	loops []*Loop
}

// NewDriver returns a driver over loops, stepped in the given order.
func NewDriver(loops ...*Loop) *Driver {
	return &Driver{loops: loops}
}

// Add registers another loop.
func (d *Driver) Add(l *Loop) { d.loops = append(d.loops, l) }

// Loops returns the registered loops.
func (d *Driver) Loops() []*Loop { return d.loops }

// Step advances every loop by one frame.
func (d *Driver) Step() {
	for _, l := range d.loops {
		l.Step()
	}
}

// Run steps the driver n times.
func (d *Driver) Run(n int) {
	for i := 0; i < n; i++ {
		d.Step()
	}
}
