// Package games holds the six arcade mini-games. Each game owns its state
// and mutates it only from Update and Handle; the only thing games share is
// the score reporter.
package games

import (
	"math/rand/v2"
	"time"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

// Env is what a game needs from the composition root.
type Env struct {
	Scores  engine.Reporter
	Rand    engine.Rand
	Sound   engine.Sound
	Palette engine.Palette
}

func (e Env) withDefaults() Env {
	if e.Scores == nil {
		e.Scores = discard{}
	}
	if e.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		e.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if e.Sound == nil {
		e.Sound = engine.Silent{}
	}
	if e.Palette.Background == nil {
		e.Palette = engine.Dark
	}
	return e
}

type discard struct{}

func (discard) Report(score.Key, int) int { return 0 }

// isReset reports whether ev asks the game to start over.
func isReset(ev engine.InputEvent) bool {
	return ev.Kind == engine.Action && ev.Action == engine.ActionReset
}
