package games

import (
	"fmt"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

const (
	catcherWidth       = 820
	catcherHeight      = 300
	catcherSpawnEvery  = 35
	catcherSpawnRange  = 760.0
	catcherFallSpeed   = 2.2
	catcherFloor       = 290.0
	catcherPaddleW     = 75.0
	catcherPaddleH     = 18.0
	catcherPaddleY     = 240.0
	catcherPaddleStart = 370.0
	catcherSlack       = 8.0
	catcherPoints      = 5
)

var skillWords = []string{"HTML", "Editing", "Creativity", "UI", "JS"}

// Drop is a falling skill label.
type Drop struct {
	X, Y  float64
	Label string
}

// Catcher is the Skill Catcher game: move the paddle to catch falling skills.
type Catcher struct {
	env Env

	PaddleX float64
	Drops   []Drop
	Score   int
	tick    int
}

func NewCatcher(env Env) *Catcher {
	c := &Catcher{env: env.withDefaults(), PaddleX: catcherPaddleStart}
	return c
}

func (c *Catcher) Title() string       { return "Skill Catcher" }
func (c *Catcher) ScoreKey() score.Key { return score.Catcher }
func (c *Catcher) Size() (int, int)    { return catcherWidth, catcherHeight }
func (c *Catcher) Status() string      { return fmt.Sprintf("Score: %d", c.Score) }
func (c *Catcher) Message() string     { return "" }

// Reset clears the score and every falling item. The paddle stays put.
func (c *Catcher) Reset() {
	c.Score = 0
	c.Drops = nil
}

func (c *Catcher) Handle(ev engine.InputEvent) {
	switch {
	case isReset(ev):
		c.Reset()
	case ev.Kind == engine.PointerMove || ev.Kind == engine.PointerDown:
		c.PaddleX = engine.Clamp(ev.X-catcherPaddleW/2, 0, catcherWidth-catcherPaddleW)
	}
}

func (c *Catcher) Update(frames int) {
	for i := 0; i < frames; i++ {
		c.step()
	}
}

func (c *Catcher) step() {
	c.tick++
	if c.tick%catcherSpawnEvery == 0 {
		c.Drops = append(c.Drops, Drop{
			X:     c.env.Rand.Float64() * catcherSpawnRange,
			Y:     -10,
			Label: skillWords[c.env.Rand.IntN(len(skillWords))],
		})
	}

	kept := c.Drops[:0]
	for _, d := range c.Drops {
		d.Y += catcherFallSpeed
		if c.caught(d) {
			c.Score += catcherPoints
			c.env.Sound.Blip()
			c.env.Scores.Report(score.Catcher, c.Score)
			continue
		}
		if d.Y < catcherFloor {
			kept = append(kept, d)
		}
	}
	c.Drops = kept
}

func (c *Catcher) caught(d Drop) bool {
	return d.Y > catcherPaddleY && d.X >= c.PaddleX-catcherSlack && d.X <= c.PaddleX+catcherPaddleW
}

func (c *Catcher) Render(s engine.Surface) {
	p := c.env.Palette
	s.FillRect(0, 0, catcherWidth, catcherHeight, p.Background)
	s.FillRect(c.PaddleX, catcherPaddleY, catcherPaddleW, catcherPaddleH, p.Primary)
	for _, d := range c.Drops {
		s.Text(d.Label, d.X, d.Y, p.Accent)
	}
}
