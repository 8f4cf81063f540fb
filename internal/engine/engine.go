// Package engine drives the arcade's mini-games: every game is a state
// machine with an Update/Render pair, stepped once per frame by its own Loop.
package engine

import (
	"image/color"

	"github.com/Zachkp/playground/internal/score"
)

// TPS is the number of frame steps per second.
const TPS = 60

// Surface is the drawing target of one game canvas. Coordinates are canvas
// local, origin at the top left.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Text(s string, x, y float64, c color.Color)
}

// Game is one self-contained mini-game.
type Game interface {
	Title() string
	ScoreKey() score.Key
	// Size is the canvas size in pixels.
	Size() (w, h int)
	// Update advances the game by the given number of frames.
	Update(frames int)
	Render(s Surface)
	Handle(ev InputEvent)
	Reset()
	// Status is the score line shown under the canvas.
	Status() string
	// Message is the game's transient text (facts, death notices).
	Message() string
}

// Palette holds the colors games draw with.
type Palette struct {
	Background color.Color
	Foreground color.Color
	Primary    color.Color
	Accent     color.Color
	Danger     color.Color
	Muted      color.Color
}

// Dark is the default theme.
var Dark = Palette{
	Background: color.RGBA{0x12, 0x10, 0x24, 0xff},
	Foreground: color.RGBA{0xf1, 0xee, 0xff, 0xff},
	Primary:    color.RGBA{0x91, 0xc5, 0xff, 0xff},
	Accent:     color.RGBA{0xff, 0xc3, 0xa0, 0xff},
	Danger:     color.RGBA{0xff, 0x7b, 0x9c, 0xff},
	Muted:      color.RGBA{0x4a, 0x45, 0x6e, 0xff},
}

// Light is used when the site theme is "light".
var Light = Palette{
	Background: color.RGBA{0xf7, 0xf5, 0xff, 0xff},
	Foreground: color.RGBA{0x1d, 0x1a, 0x33, 0xff},
	Primary:    color.RGBA{0x3a, 0x7b, 0xd5, 0xff},
	Accent:     color.RGBA{0xd9, 0x6a, 0x2b, 0xff},
	Danger:     color.RGBA{0xd1, 0x2f, 0x5a, 0xff},
	Muted:      color.RGBA{0xc9, 0xc4, 0xe3, 0xff},
}

// Rand is the randomness games draw from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Reporter receives scores. *score.Store satisfies it.
type Reporter interface {
	Report(key score.Key, value int) int
}

// Sound plays short effects. Failures are the player's to swallow.
type Sound interface {
	Blip()
}

// Silent is a Sound that plays nothing.
type Silent struct{}

func (Silent) Blip() {}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
