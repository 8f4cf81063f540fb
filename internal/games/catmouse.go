package games

import (
	"fmt"
	"math"

	"github.com/Zachkp/playground/internal/engine"
	"github.com/Zachkp/playground/internal/score"
)

const (
	catWidth   = 820
	catHeight  = 300
	catMargin  = 20.0
	catWander  = 3.0
	catCapture = 24.0
	catPoints  = 25
)

// CatMouse is the Cat & Mouse game: steer the cat onto the wandering mouse.
type CatMouse struct {
	env Env

	CatX, CatY     float64
	MouseX, MouseY float64
	Score          int
}

func NewCatMouse(env Env) *CatMouse {
	g := &CatMouse{env: env.withDefaults(), CatX: catWidth / 4, CatY: catHeight / 2}
	g.Reset()
	return g
}

func (g *CatMouse) Title() string       { return "Cat & Mouse" }
func (g *CatMouse) ScoreKey() score.Key { return score.Cat }
func (g *CatMouse) Size() (int, int)    { return catWidth, catHeight }
func (g *CatMouse) Status() string      { return fmt.Sprintf("Score: %d", g.Score) }
func (g *CatMouse) Message() string     { return "" }

// Reset zeroes the score and puts the mouse back in the middle.
func (g *CatMouse) Reset() {
	g.Score = 0
	g.MouseX, g.MouseY = catWidth/2, catHeight/2
}

func (g *CatMouse) Handle(ev engine.InputEvent) {
	switch {
	case isReset(ev):
		g.Reset()
	case ev.Kind == engine.PointerMove || ev.Kind == engine.PointerDown:
		g.CatX, g.CatY = ev.X, ev.Y
	}
}

func (g *CatMouse) Update(frames int) {
	for i := 0; i < frames; i++ {
		g.step()
	}
}

func (g *CatMouse) step() {
	g.MouseX = engine.Clamp(g.MouseX+(g.env.Rand.Float64()*2-1)*catWander, catMargin, catWidth-catMargin)
	g.MouseY = engine.Clamp(g.MouseY+(g.env.Rand.Float64()*2-1)*catWander, catMargin, catHeight-catMargin)

	if math.Hypot(g.CatX-g.MouseX, g.CatY-g.MouseY) < catCapture {
		g.Score += catPoints
		g.MouseX = catMargin + g.env.Rand.Float64()*(catWidth-2*catMargin)
		g.MouseY = catMargin + g.env.Rand.Float64()*(catHeight-2*catMargin)
		g.env.Sound.Blip()
		g.env.Scores.Report(score.Cat, g.Score)
	}
}

func (g *CatMouse) Render(s engine.Surface) {
	p := g.env.Palette
	s.FillRect(0, 0, catWidth, catHeight, p.Background)
	s.FillCircle(g.MouseX, g.MouseY, 8, p.Accent)
	s.FillCircle(g.CatX, g.CatY, 14, p.Primary)
}
